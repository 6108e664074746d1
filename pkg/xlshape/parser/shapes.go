// Package parser reads shapes and rich text out of xlsx workbooks.
package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strings"

	"github.com/ukaji3/xlshape-go/pkg/xlshape/models"
)

// nsR is the relationships namespace used by r:id attributes.
const nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

// ExtractShapes extracts the simple shape records of every sheet in an xlsx file.
// Sheets without a drawing part are omitted. Shapes nested in group shapes are
// returned in document order alongside top-level shapes.
func ExtractShapes(xlsxPath string) (map[string][]models.ShapeRecord, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheetDrawingMap := getSheetDrawingMap(&r.Reader)

	result := make(map[string][]models.ShapeRecord)
	for sheetName, drawingPath := range sheetDrawingMap {
		data, err := readZipFile(&r.Reader, drawingPath)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		shapes, err := ParseDrawing(data)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %s: %w", sheetName, drawingPath, err)
		}
		result[sheetName] = shapes
	}

	return result, nil
}

// ParseDrawing decodes the simple shapes of a drawing part (xl/drawings/drawingN.xml).
func ParseDrawing(data []byte) ([]models.ShapeRecord, error) {
	var results []models.ShapeRecord

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if se, ok := token.(xml.StartElement); ok {
			switch se.Name.Local {
			case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
				shapes, err := parseContainer(decoder)
				if err != nil {
					return nil, err
				}
				results = append(results, shapes...)
			case "Fallback":
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
			}
		}
	}

	return results, nil
}

// parseContainer collects sp elements until the end of the current anchor or
// group shape element. Markup-compatibility fallbacks are skipped so shapes are
// not reported twice.
func parseContainer(decoder *xml.Decoder) ([]models.ShapeRecord, error) {
	var results []models.ShapeRecord

	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sp":
				var rec models.ShapeRecord
				if err := decoder.DecodeElement(&rec, &t); err != nil {
					return nil, err
				}
				results = append(results, rec)
			case "grpSp", "AlternateContent", "Choice":
				grpResults, err := parseContainer(decoder)
				if err != nil {
					return nil, err
				}
				results = append(results, grpResults...)
			default:
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			return results, nil
		}
	}
}

// Summarize returns pixel geometry, type label and text of a shape record.
func Summarize(rec models.ShapeRecord) models.ShapeSummary {
	summary := models.ShapeSummary{
		Name: rec.Name(),
		Type: "Unknown",
	}
	if rec.NvSpPr != nil {
		summary.ID = rec.NvSpPr.CNvPr.ID
	}
	if rec.SpPr != nil {
		if xfrm := rec.SpPr.Xfrm; xfrm != nil {
			if xfrm.Off != nil {
				summary.L = models.EMUToPixels(xfrm.Off.X)
				summary.T = models.EMUToPixels(xfrm.Off.Y)
			}
			if xfrm.Ext != nil {
				summary.W = models.EMUToPixels(xfrm.Ext.Cx)
				summary.H = models.EMUToPixels(xfrm.Ext.Cy)
			}
			rotDeg := float64(xfrm.Rot) / 60000.0
			if math.Abs(rotDeg) >= 1e-6 {
				summary.Rotation = &rotDeg
			}
		}
		if geom := rec.SpPr.PrstGeom; geom != nil && geom.Prst.IsValid() {
			summary.Prst = geom.Prst.String()
			summary.Type = geom.Prst.Label()
		}
	}
	if summary.Prst == "" && summary.Name != "" {
		summary.Type = summary.Name
	}
	if rec.TxBody != nil {
		summary.Text = strings.TrimSpace(rec.TxBody.Text())
		if len(rec.TxBody.P) > 0 {
			summary.Runs = len(rec.TxBody.P[0].R)
		}
	}
	return summary
}

// getSheetDrawingMap returns a mapping of sheet names to their drawing XML paths.
func getSheetDrawingMap(r *zip.Reader) map[string]string {
	result := make(map[string]string)

	// Read workbook.xml to get sheet names and rIds
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil {
		return result
	}

	sheetsInfo := parseWorkbookSheets(workbookXML)
	if len(sheetsInfo) == 0 {
		return result
	}

	// Read workbook.xml.rels to map rId to sheet file
	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return result
	}

	sheetFiles := parseWorkbookRels(wbRelsXML, sheetsInfo)

	// For each sheet, find its drawing relationship
	for sheetName, sheetPath := range sheetFiles {
		relsPath := strings.Replace(sheetPath, "worksheets/", "worksheets/_rels/", 1)
		relsPath = strings.Replace(relsPath, ".xml", ".xml.rels", 1)

		sheetRelsXML, err := readZipFile(r, relsPath)
		if err != nil {
			continue
		}

		drawingPath := findDrawingRelationship(sheetRelsXML)
		if drawingPath != "" {
			result[sheetName] = resolveRelativePath(drawingPath, "xl/drawings")
		}
	}

	return result
}

// Helper functions

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/xl/") {
		return strings.TrimPrefix(target, "/")
	}
	if strings.HasPrefix(target, "/") {
		return baseDir + target
	}
	return baseDir + "/" + target
}

func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string) // rId -> sheet name
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch {
				case attr.Name.Local == "name":
					name = attr.Value
				case attr.Name.Local == "id" && (attr.Name.Space == nsR || attr.Name.Space == "r" || attr.Name.Space == ""):
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string) // sheet name -> file path
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if sheetName, ok := sheetsInfo[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
				result[sheetName] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}

func findDrawingRelationship(data []byte) string {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var relType, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Type":
					relType = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if strings.HasSuffix(relType, "/drawing") {
				return target
			}
		}
	}

	return ""
}

// GetShapeDrawingPath returns the drawing path for a sheet (exported for testing).
func GetShapeDrawingPath(xlsxPath, sheetName string) (string, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	return getSheetDrawingMap(&r.Reader)[sheetName], nil
}
