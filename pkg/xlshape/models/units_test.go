package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEMUConversions(t *testing.T) {
	tests := []struct {
		px  int
		emu int64
	}{
		{0, 0},
		{1, 9525},
		{96, 914400},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.emu, PixelsToEMU(tt.px), "PixelsToEMU(%d)", tt.px)
		assert.Equal(t, tt.px, EMUToPixels(tt.emu), "EMUToPixels(%d)", tt.emu)
	}
	assert.Equal(t, 10, EMUToPixels(9525*10+9524), "partial pixels are truncated")
}

func TestHundredthsToPoints(t *testing.T) {
	assert.Equal(t, 11.0, HundredthsToPoints(1100))
	assert.Equal(t, 10.5, HundredthsToPoints(1050))
}
