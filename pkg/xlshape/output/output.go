// Package output serializes extracted shapes for the command line.
package output

import (
	"encoding/json"
	"encoding/xml"

	"github.com/ukaji3/xlshape-go/pkg/xlshape/models"
)

// ToJSON serializes workbook shape data.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshalJSON(wb, pretty)
}

// SheetToJSON serializes the shapes of a single sheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshalJSON(sheet, pretty)
}

// ShapeToXML serializes a shape record as an sp element.
func ShapeToXML(rec *models.ShapeRecord, pretty bool) ([]byte, error) {
	if pretty {
		return xml.MarshalIndent(rec, "", "  ")
	}
	return xml.Marshal(rec)
}

func marshalJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
