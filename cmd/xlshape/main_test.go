package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlshape-go/pkg/xlshape"
	"github.com/ukaji3/xlshape-go/pkg/xlshape/models"
	"github.com/ukaji3/xlshape-go/pkg/xlshape/parser"
	"github.com/xuri/excelize/v2"
)

const definitions = `
shapes:
  - cell: B2
    name: Decision
    type: flowChartDecision
    width: 120
    height: 80
    runs:
      - text: "Ship "
        bold: true
      - text: "it?"
  - cell: F2
    sheet: Notes
    text: Remember
`

func execute(t *testing.T, args ...string) string {
	t.Helper()
	outputPath, pretty, configPath, verbose = "", false, "", false

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestNewAndDump(t *testing.T) {
	dir := t.TempDir()
	defsPath := filepath.Join(dir, "shapes.yaml")
	require.NoError(t, os.WriteFile(defsPath, []byte(definitions), 0644))
	book := filepath.Join(dir, "book.xlsx")

	execute(t, "new", book, "--config", defsPath)

	records, err := parser.ExtractShapes(book)
	require.NoError(t, err)
	require.Len(t, records["Sheet1"], 1)
	require.Len(t, records["Notes"], 1)
	assert.Equal(t, models.ShapeTypeFlowChartDecision, records["Sheet1"][0].SpPr.PrstGeom.Prst)
	assert.Equal(t, models.ShapeTypeRect, records["Notes"][0].SpPr.PrstGeom.Prst)

	f, err := excelize.OpenFile(book)
	require.NoError(t, err)
	defer f.Close()

	rt, err := parser.CellRichText(f, "Sheet1", "B2")
	require.NoError(t, err)
	require.Len(t, rt.R, 2)
	assert.Equal(t, "Ship ", rt.R[0].T)
	assert.True(t, rt.R[0].RPr.B.Value())
	assert.Equal(t, "it?", rt.R[1].T)
	assert.False(t, rt.R[1].RPr != nil && rt.R[1].RPr.B.Value())

	rt, err = parser.CellRichText(f, "Notes", "F2")
	require.NoError(t, err)
	assert.Equal(t, "Remember", xlshape.NewRichTextStringFromModel(rt).String())

	out := execute(t, "dump", book, "--pretty")
	assert.Contains(t, out, `"book_name": "book.xlsx"`)
	assert.Contains(t, out, `"prst": "flowChartDecision"`)
	assert.Contains(t, out, "Remember")

	jsonPath := filepath.Join(dir, "shapes.json")
	execute(t, "dump", book, "-o", jsonPath)
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{"))
}

func TestPrototypeCommand(t *testing.T) {
	out := execute(t, "prototype", "--pretty")
	assert.Contains(t, out, `prst="rect"`)
	assert.Contains(t, out, `name="Shape 1"`)
	assert.Contains(t, out, `anchor="ctr"`)
}

func TestDumpMissingFile(t *testing.T) {
	outputPath, pretty = "", false
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"dump", filepath.Join(t.TempDir(), "missing.xlsx")})
	assert.Error(t, cmd.Execute())
}
