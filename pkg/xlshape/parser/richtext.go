package parser

import (
	"github.com/ukaji3/xlshape-go/pkg/xlshape/models"
	"github.com/xuri/excelize/v2"
)

// CellRichText extracts the rich text value of a cell.
// A cell without formatting runs yields a value with plain text only.
func CellRichText(f *excelize.File, sheetName, cell string) (*models.RichText, error) {
	runs, err := f.GetCellRichText(sheetName, cell)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		value, err := f.GetCellValue(sheetName, cell)
		if err != nil {
			return nil, err
		}
		return &models.RichText{T: value}, nil
	}
	return richTextFromRuns(runs), nil
}

// richTextFromRuns converts excelize runs. A single run without a font is
// treated as plain text.
func richTextFromRuns(runs []excelize.RichTextRun) *models.RichText {
	if len(runs) == 1 && runs[0].Font == nil {
		return &models.RichText{T: runs[0].Text}
	}
	rt := &models.RichText{R: make([]models.RichTextRun, 0, len(runs))}
	for _, run := range runs {
		rt.R = append(rt.R, models.RichTextRun{
			RPr: RunPropertiesFromFont(run.Font),
			T:   run.Text,
		})
	}
	return rt
}

// ExcelizeRuns converts a rich text value to excelize runs.
func ExcelizeRuns(rt *models.RichText) []excelize.RichTextRun {
	if rt == nil {
		return nil
	}
	if len(rt.R) == 0 {
		return []excelize.RichTextRun{{Text: rt.T}}
	}
	runs := make([]excelize.RichTextRun, 0, len(rt.R))
	for _, r := range rt.R {
		runs = append(runs, excelize.RichTextRun{
			Font: FontFromRunProperties(r.RPr),
			Text: r.T,
		})
	}
	return runs
}

// RunPropertiesFromFont converts an excelize font to shared string run properties.
func RunPropertiesFromFont(font *excelize.Font) *models.RunProperties {
	if font == nil {
		return nil
	}
	props := &models.RunProperties{}
	if font.Family != "" {
		props.RFont = &models.AttrValString{Val: font.Family}
	}
	if font.Bold {
		props.B = models.NewAttrValBool(true)
	}
	if font.Italic {
		props.I = models.NewAttrValBool(true)
	}
	if font.Strike {
		props.Strike = models.NewAttrValBool(true)
	}
	if font.Size > 0 {
		props.Sz = &models.AttrValFloat{Val: font.Size}
	}
	if font.Underline != "" {
		props.U = &models.AttrValString{Val: font.Underline}
	}
	if font.Color != "" {
		props.Color = &models.AttrValString{Val: font.Color}
	}
	return props
}

// FontFromRunProperties converts shared string run properties to an excelize font.
func FontFromRunProperties(props *models.RunProperties) *excelize.Font {
	if props == nil {
		return nil
	}
	font := &excelize.Font{
		Family: props.FontName(),
		Bold:   props.B.Value(),
		Italic: props.I.Value(),
		Strike: props.Strike.Value(),
	}
	if props.Sz != nil {
		font.Size = props.Sz.Val
	}
	if props.U != nil {
		font.Underline = props.U.Val
	}
	if props.Color != nil {
		font.Color = props.Color.Val
	}
	return font
}

// FontFromCharacterProperties converts DrawingML run properties to an excelize font.
func FontFromCharacterProperties(rPr *models.CharacterProperties) *excelize.Font {
	if rPr == nil {
		return nil
	}
	font := &excelize.Font{Family: rPr.Typeface()}
	if rPr.B != nil {
		font.Bold = *rPr.B
	}
	if rPr.I != nil {
		font.Italic = *rPr.I
	}
	if rPr.Sz != nil {
		font.Size = models.HundredthsToPoints(*rPr.Sz)
	}
	return font
}
