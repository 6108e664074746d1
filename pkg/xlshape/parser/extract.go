package parser

import (
	"path/filepath"

	"github.com/ukaji3/xlshape-go/pkg/xlshape/models"
	"github.com/xuri/excelize/v2"
)

// ExtractWorkbook summarizes the shapes of every sheet in an xlsx file. Sheets
// without shapes are included with an empty list.
func ExtractWorkbook(path string) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := ExtractShapes(path)
	if err != nil {
		return nil, err
	}

	sheets := make(map[string]models.SheetData)
	for _, sheetName := range f.GetSheetList() {
		recs := records[sheetName]
		shapes := make([]models.ShapeSummary, 0, len(recs))
		for _, rec := range recs {
			shapes = append(shapes, Summarize(rec))
		}
		sheets[sheetName] = models.SheetData{Shapes: shapes}
	}

	return &models.WorkbookData{
		BookName: filepath.Base(path),
		Sheets:   sheets,
	}, nil
}
