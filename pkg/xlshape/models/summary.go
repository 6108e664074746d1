package models

// ShapeSummary represents shape metadata including position, size, type and text.
type ShapeSummary struct {
	// ID is the drawing object id from the non-visual properties.
	ID int `json:"id"`
	// Name is the shape name.
	Name string `json:"name,omitempty"`
	// Text is the visible text content of the shape.
	Text string `json:"text"`
	// L is the left offset in pixels.
	L int `json:"l"`
	// T is the top offset in pixels.
	T int `json:"t"`
	// W is the shape width in pixels.
	W int `json:"w"`
	// H is the shape height in pixels.
	H int `json:"h"`
	// Prst is the preset geometry token (e.g. "rect").
	Prst string `json:"prst,omitempty"`
	// Type is the human-readable shape type label.
	Type string `json:"type,omitempty"`
	// Rotation is the rotation angle in degrees.
	Rotation *float64 `json:"rotation,omitempty"`
	// Runs is the number of text runs in the first paragraph.
	Runs int `json:"runs"`
}

// SheetData represents the shapes found on a single sheet.
type SheetData struct {
	// Shapes contains shapes detected on the sheet.
	Shapes []ShapeSummary `json:"shapes"`
}

// WorkbookData represents workbook-level container with per-sheet data.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to SheetData.
	Sheets map[string]SheetData `json:"sheets"`
}
