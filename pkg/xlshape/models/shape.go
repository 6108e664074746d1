// Package models defines the DrawingML and SpreadsheetML structures a shape works on.
package models

import "encoding/xml"

// Scheme colors and font collection indexes referenced by the default shape style.
const (
	SchemeColorAccent1 = "accent1"
	SchemeColorLt1     = "lt1"

	FontCollectionMajor = "major"
	FontCollectionMinor = "minor"
	FontCollectionNone  = "none"
)

// Text anchoring and alignment tokens.
const (
	TextAnchorTop    = "t"
	TextAnchorCenter = "ctr"
	TextAnchorBottom = "b"

	TextAlignLeft   = "l"
	TextAlignCenter = "ctr"
	TextAlignRight  = "r"
)

// ShapeRecord directly maps the sp element from the namespace
// http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing. It is the
// subtree describing one shape's identity, geometry, style and text.
type ShapeRecord struct {
	XMLName  xml.Name         `xml:"sp" json:"-"`
	Macro    string           `xml:"macro,attr" json:"macro,omitempty"`
	TextLink string           `xml:"textlink,attr" json:"textlink,omitempty"`
	NvSpPr   *NonVisualShape  `xml:"nvSpPr" json:"nv_sp_pr,omitempty"`
	SpPr     *ShapeProperties `xml:"spPr" json:"sp_pr,omitempty"`
	Style    *ShapeStyle      `xml:"style" json:"style,omitempty"`
	TxBody   *TextBody        `xml:"txBody" json:"tx_body,omitempty"`
}

// Name returns the shape name from the non-visual properties, or "" if absent.
func (r *ShapeRecord) Name() string {
	if r == nil || r.NvSpPr == nil {
		return ""
	}
	return r.NvSpPr.CNvPr.Name
}

// NonVisualShape directly maps the nvSpPr element.
type NonVisualShape struct {
	CNvPr   NonVisualDrawingProps       `xml:"cNvPr" json:"c_nv_pr"`
	CNvSpPr *NonVisualShapeDrawingProps `xml:"cNvSpPr" json:"c_nv_sp_pr,omitempty"`
}

// NonVisualDrawingProps directly maps the cNvPr element.
type NonVisualDrawingProps struct {
	ID    int    `xml:"id,attr" json:"id"`
	Name  string `xml:"name,attr" json:"name"`
	Descr string `xml:"descr,attr,omitempty" json:"descr,omitempty"`
}

// NonVisualShapeDrawingProps directly maps the cNvSpPr element.
type NonVisualShapeDrawingProps struct {
	TxBox bool `xml:"txBox,attr,omitempty" json:"tx_box,omitempty"`
}

// ShapeProperties directly maps the spPr element.
type ShapeProperties struct {
	Xfrm     *Transform2D    `xml:"xfrm" json:"xfrm,omitempty"`
	PrstGeom *PresetGeometry `xml:"prstGeom" json:"prst_geom,omitempty"`
}

// Transform2D directly maps the xfrm element. Offsets and extents are in EMU,
// rotation in 60000ths of a degree.
type Transform2D struct {
	Rot   int             `xml:"rot,attr,omitempty" json:"rot,omitempty"`
	FlipH bool            `xml:"flipH,attr,omitempty" json:"flip_h,omitempty"`
	FlipV bool            `xml:"flipV,attr,omitempty" json:"flip_v,omitempty"`
	Off   *Point2D        `xml:"off" json:"off,omitempty"`
	Ext   *PositiveSize2D `xml:"ext" json:"ext,omitempty"`
}

// Point2D directly maps the off element.
type Point2D struct {
	X int64 `xml:"x,attr" json:"x"`
	Y int64 `xml:"y,attr" json:"y"`
}

// PositiveSize2D directly maps the ext element.
type PositiveSize2D struct {
	Cx int64 `xml:"cx,attr" json:"cx"`
	Cy int64 `xml:"cy,attr" json:"cy"`
}

// PresetGeometry directly maps the prstGeom element.
type PresetGeometry struct {
	Prst  ShapeType      `xml:"prst,attr" json:"prst"`
	AvLst *GeomGuideList `xml:"avLst" json:"av_lst,omitempty"`
}

// GeomGuideList directly maps the avLst element (adjust values).
type GeomGuideList struct {
	Gd []GeomGuide `xml:"gd" json:"gd,omitempty"`
}

// GeomGuide directly maps the gd element.
type GeomGuide struct {
	Name string `xml:"name,attr" json:"name"`
	Fmla string `xml:"fmla,attr" json:"fmla"`
}

// ShapeStyle directly maps the style element: references into the theme's
// line, fill, effect and font collections.
type ShapeStyle struct {
	LnRef     StyleMatrixReference `xml:"lnRef" json:"ln_ref"`
	FillRef   StyleMatrixReference `xml:"fillRef" json:"fill_ref"`
	EffectRef StyleMatrixReference `xml:"effectRef" json:"effect_ref"`
	FontRef   FontReference        `xml:"fontRef" json:"font_ref"`
}

// StyleMatrixReference directly maps the lnRef, fillRef and effectRef elements.
type StyleMatrixReference struct {
	Idx       int          `xml:"idx,attr" json:"idx"`
	SchemeClr *SchemeColor `xml:"schemeClr" json:"scheme_clr,omitempty"`
}

// FontReference directly maps the fontRef element.
type FontReference struct {
	Idx       string       `xml:"idx,attr" json:"idx"`
	SchemeClr *SchemeColor `xml:"schemeClr" json:"scheme_clr,omitempty"`
}

// SchemeColor directly maps the schemeClr element.
type SchemeColor struct {
	Val   string           `xml:"val,attr" json:"val"`
	Shade *PercentageValue `xml:"shade" json:"shade,omitempty"`
}

// PercentageValue holds a val attribute in 1000ths of a percent.
type PercentageValue struct {
	Val int `xml:"val,attr" json:"val"`
}
