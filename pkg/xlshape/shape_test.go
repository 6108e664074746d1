package xlshape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlshape-go/pkg/xlshape/models"
)

func newTestShape(t *testing.T) *SimpleShape {
	t.Helper()
	s, err := NewShape(DefaultOptions())
	require.NoError(t, err)
	return s
}

func TestShapeTypeRoundTrip(t *testing.T) {
	s := newTestShape(t)

	got, err := s.ShapeType()
	require.NoError(t, err)
	assert.Equal(t, models.ShapeTypeRect, got)

	for _, st := range models.AllShapeTypes() {
		require.NoError(t, s.SetShapeType(st))
		got, err := s.ShapeType()
		require.NoError(t, err)
		if got != st {
			t.Errorf("SetShapeType(%v); ShapeType() = %v", st, got)
		}
	}
}

func TestShapeTypeWithoutGeometry(t *testing.T) {
	tests := []struct {
		name   string
		record *models.ShapeRecord
	}{
		{"no properties", &models.ShapeRecord{}},
		{"no geometry", &models.ShapeRecord{SpPr: &models.ShapeProperties{}}},
		{"nil record", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSimpleShape(tt.record, DefaultOptions())

			_, err := s.ShapeType()
			assert.ErrorIs(t, err, ErrInvalidState)

			err = s.SetShapeType(models.ShapeTypeEllipse)
			assert.ErrorIs(t, err, ErrInvalidState)
			var shapeErr *ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, "set_shape_type", shapeErr.Op)
		})
	}
}

func TestSetShapeTypeRejectsUnknownValue(t *testing.T) {
	s := newTestShape(t)

	for _, st := range []models.ShapeType{0, -1, models.ShapeTypeChartPlus + 1} {
		err := s.SetShapeType(st)
		assert.ErrorIs(t, err, ErrInvalidArgument, "type %d", int(st))
	}

	got, err := s.ShapeType()
	require.NoError(t, err)
	assert.Equal(t, models.ShapeTypeRect, got)
}

func TestShapePropertiesCapability(t *testing.T) {
	s := newTestShape(t)

	var hp HasShapeProperties = s
	require.NotNil(t, hp.ShapeProperties())
	assert.Same(t, s.Record().SpPr, hp.ShapeProperties())
}

func TestSetSizeAndOffset(t *testing.T) {
	s := newTestShape(t)

	require.NoError(t, s.SetSize(200, 80))
	require.NoError(t, s.SetOffset(10, 20))

	xfrm := s.Record().SpPr.Xfrm
	assert.Equal(t, int64(200*9525), xfrm.Ext.Cx)
	assert.Equal(t, int64(80*9525), xfrm.Ext.Cy)
	assert.Equal(t, int64(10*9525), xfrm.Off.X)
	assert.Equal(t, int64(20*9525), xfrm.Off.Y)

	bare := NewSimpleShape(&models.ShapeRecord{}, DefaultOptions())
	assert.ErrorIs(t, bare.SetSize(1, 1), ErrInvalidState)
}

func TestSetName(t *testing.T) {
	s := newTestShape(t)

	require.NoError(t, s.SetName(7, "Box"))
	assert.Equal(t, "Box", s.Name())
	assert.Equal(t, 7, s.Record().NvSpPr.CNvPr.ID)

	bare := NewSimpleShape(&models.ShapeRecord{}, DefaultOptions())
	assert.ErrorIs(t, bare.SetName(1, "x"), ErrInvalidState)
}

func TestShapeErrorOps(t *testing.T) {
	bare := NewSimpleShape(&models.ShapeRecord{}, DefaultOptions())

	tests := []struct {
		op  string
		run func() error
	}{
		{"shape_type", func() error { _, err := bare.ShapeType(); return err }},
		{"set_shape_type", func() error { return bare.SetShapeType(models.ShapeTypeRect) }},
		{"set_size", func() error { return bare.SetSize(1, 1) }},
		{"set_offset", func() error { return bare.SetOffset(1, 1) }},
		{"set_name", func() error { return bare.SetName(1, "x") }},
		{"set_text", func() error { return bare.SetText(NewRichTextString("x"), newStubStyles()) }},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			var shapeErr *ShapeError
			require.ErrorAs(t, tt.run(), &shapeErr)
			assert.Equal(t, tt.op, shapeErr.Op)
			assert.ErrorIs(t, shapeErr, ErrInvalidState)
		})
	}
}
