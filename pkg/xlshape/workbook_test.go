package xlshape

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlshape-go/pkg/xlshape/models"
	"github.com/ukaji3/xlshape-go/pkg/xlshape/parser"
	"github.com/xuri/excelize/v2"
)

func TestWorkbookStyles(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Italic: true, Family: "Consolas", Size: 12},
	})
	require.NoError(t, err)

	styles := NewWorkbookStyles(f)

	family, err := styles.DefaultFont()
	require.NoError(t, err)
	assert.NotEmpty(t, family)

	props, err := styles.Font(styleID)
	require.NoError(t, err)
	assert.Equal(t, "Consolas", props.FontName())
	assert.True(t, props.B.Value())
	assert.True(t, props.I.Value())
	require.NotNil(t, props.Sz)
	assert.Equal(t, 12.0, props.Sz.Val)
}

func TestAddShapeRoundTrip(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	s, err := NewShape(DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, s.SetShapeType(models.ShapeTypeEllipse))
	require.NoError(t, s.SetSize(200, 80))

	text := NewRichTextString("Hello World")
	require.NoError(t, text.ApplyFont(0, 6, &models.RunProperties{
		B:     models.NewAttrValBool(true),
		RFont: &models.AttrValString{Val: "Calibri"},
	}))
	require.NoError(t, text.ApplyFont(6, 11, &models.RunProperties{}))
	require.NoError(t, s.SetText(text, NewWorkbookStyles(f)))

	require.NoError(t, AddShape(f, "Sheet1", "B2", s))

	path := filepath.Join(t.TempDir(), "shapes.xlsx")
	require.NoError(t, f.SaveAs(path))

	records, err := parser.ExtractShapes(path)
	require.NoError(t, err)
	require.Len(t, records["Sheet1"], 1)

	rec := records["Sheet1"][0]
	require.NotNil(t, rec.SpPr)
	require.NotNil(t, rec.SpPr.PrstGeom)
	assert.Equal(t, models.ShapeTypeEllipse, rec.SpPr.PrstGeom.Prst)

	require.NotNil(t, rec.TxBody)
	var sb strings.Builder
	for _, p := range rec.TxBody.P {
		sb.WriteString(p.Text())
	}
	assert.Equal(t, "Hello World", strings.TrimSpace(sb.String()))
}

func TestAddShapeRequiresGeometry(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	s := NewSimpleShape(&models.ShapeRecord{}, DefaultOptions())
	assert.ErrorIs(t, AddShape(f, "Sheet1", "A1", s), ErrInvalidState)
}
