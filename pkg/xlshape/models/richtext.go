package models

import "strings"

// RichText directly maps the is and si elements from the namespace
// http://schemas.openxmlformats.org/spreadsheetml/2006/main. A value holds either
// plain text in T or an ordered list of formatted runs in R.
type RichText struct {
	T string        `xml:"t,omitempty" json:"t,omitempty"`
	R []RichTextRun `xml:"r" json:"r,omitempty"`
}

// RunText returns the concatenated text of the runs.
func (rt *RichText) RunText() string {
	var sb strings.Builder
	for _, r := range rt.R {
		sb.WriteString(r.T)
	}
	return sb.String()
}

// RichTextRun directly maps the r element: a text segment sharing one set of
// run properties.
type RichTextRun struct {
	RPr *RunProperties `xml:"rPr" json:"r_pr,omitempty"`
	T   string         `xml:"t" json:"t"`
}

// RunProperties directly maps the rPr element of a shared string run. These
// are direct formatting applied on top of the cell style.
type RunProperties struct {
	RFont  *AttrValString `xml:"rFont" json:"r_font,omitempty"`
	Family *AttrValInt    `xml:"family" json:"family,omitempty"`
	B      *AttrValBool   `xml:"b" json:"b,omitempty"`
	I      *AttrValBool   `xml:"i" json:"i,omitempty"`
	Strike *AttrValBool   `xml:"strike" json:"strike,omitempty"`
	Color  *AttrValString `xml:"color" json:"color,omitempty"`
	Sz     *AttrValFloat  `xml:"sz" json:"sz,omitempty"`
	U      *AttrValString `xml:"u" json:"u,omitempty"`
}

// FontName returns the declared font name, or "" if the run declares none.
func (p *RunProperties) FontName() string {
	if p == nil || p.RFont == nil {
		return ""
	}
	return p.RFont.Val
}

// AttrValString is an element carrying a single string val attribute.
type AttrValString struct {
	Val string `xml:"val,attr" json:"val"`
}

// AttrValInt is an element carrying a single integer val attribute.
type AttrValInt struct {
	Val int `xml:"val,attr" json:"val"`
}

// AttrValFloat is an element carrying a single float val attribute.
type AttrValFloat struct {
	Val float64 `xml:"val,attr" json:"val"`
}

// AttrValBool is a toggle element such as <b/>. A missing val means true.
type AttrValBool struct {
	Val *bool `xml:"val,attr,omitempty" json:"val,omitempty"`
}

// Value returns the effective flag value.
func (a *AttrValBool) Value() bool {
	if a == nil {
		return false
	}
	if a.Val == nil {
		return true
	}
	return *a.Val
}

// NewAttrValBool returns a toggle element with an explicit value.
func NewAttrValBool(v bool) *AttrValBool {
	return &AttrValBool{Val: &v}
}
