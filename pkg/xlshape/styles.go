package xlshape

import (
	"fmt"

	"github.com/ukaji3/xlshape-go/pkg/xlshape/models"
	"github.com/ukaji3/xlshape-go/pkg/xlshape/parser"
	"github.com/xuri/excelize/v2"
)

// StyleTable resolves fonts against the style definitions of the workbook that
// owns a rich text value.
type StyleTable interface {
	// DefaultFont returns the workbook's default font family.
	DefaultFont() (string, error)
	// Font returns the font of the cell style with the given index as run properties.
	Font(index int) (*models.RunProperties, error)
}

// WorkbookStyles is a StyleTable backed by an excelize workbook.
type WorkbookStyles struct {
	f *excelize.File
}

// NewWorkbookStyles returns the style table of f.
func NewWorkbookStyles(f *excelize.File) *WorkbookStyles {
	return &WorkbookStyles{f: f}
}

// DefaultFont implements StyleTable.
func (w *WorkbookStyles) DefaultFont() (string, error) {
	return w.f.GetDefaultFont()
}

// Font implements StyleTable.
func (w *WorkbookStyles) Font(index int) (*models.RunProperties, error) {
	style, err := w.f.GetStyle(index)
	if err != nil {
		return nil, fmt.Errorf("style %d: %w", index, err)
	}
	if style.Font == nil {
		family, err := w.DefaultFont()
		if err != nil {
			return nil, err
		}
		return &models.RunProperties{RFont: &models.AttrValString{Val: family}}, nil
	}
	return parser.RunPropertiesFromFont(style.Font), nil
}
