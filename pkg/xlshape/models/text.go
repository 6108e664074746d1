package models

import "strings"

// TextBody directly maps the txBody element.
type TextBody struct {
	BodyPr   *TextBodyProperties `xml:"bodyPr" json:"body_pr,omitempty"`
	LstStyle *TextListStyle      `xml:"lstStyle" json:"lst_style,omitempty"`
	P        []Paragraph         `xml:"p" json:"p"`
}

// Text returns the concatenated run text of all paragraphs, one line per paragraph.
func (b *TextBody) Text() string {
	if b == nil {
		return ""
	}
	lines := make([]string, 0, len(b.P))
	for _, p := range b.P {
		lines = append(lines, p.Text())
	}
	return strings.Join(lines, "\n")
}

// TextBodyProperties directly maps the bodyPr element.
type TextBodyProperties struct {
	Anchor string `xml:"anchor,attr,omitempty" json:"anchor,omitempty"`
	RtlCol *bool  `xml:"rtlCol,attr,omitempty" json:"rtl_col,omitempty"`
	Wrap   string `xml:"wrap,attr,omitempty" json:"wrap,omitempty"`
}

// TextListStyle directly maps the lstStyle element. Level styles are not modeled.
type TextListStyle struct{}

// Paragraph directly maps the a:p element.
type Paragraph struct {
	PPr        *ParagraphProperties `xml:"pPr" json:"p_pr,omitempty"`
	R          []Run                `xml:"r" json:"r,omitempty"`
	EndParaRPr *CharacterProperties `xml:"endParaRPr" json:"end_para_r_pr,omitempty"`
}

// Text returns the concatenated text of the paragraph's runs.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.R {
		sb.WriteString(r.T)
	}
	return sb.String()
}

// ParagraphProperties directly maps the pPr element.
type ParagraphProperties struct {
	Algn string `xml:"algn,attr,omitempty" json:"algn,omitempty"`
}

// Run directly maps the a:r element: literal text plus its character properties.
type Run struct {
	RPr *CharacterProperties `xml:"rPr" json:"r_pr,omitempty"`
	T   string               `xml:"t" json:"t"`
}

// CharacterProperties directly maps the rPr and endParaRPr elements. Every
// attribute is optional; a nil pointer or empty string means absent. Sz is in
// hundredths of a point.
type CharacterProperties struct {
	Lang  string    `xml:"lang,attr,omitempty" json:"lang,omitempty"`
	Sz    *int      `xml:"sz,attr,omitempty" json:"sz,omitempty"`
	B     *bool     `xml:"b,attr,omitempty" json:"b,omitempty"`
	I     *bool     `xml:"i,attr,omitempty" json:"i,omitempty"`
	Latin *TextFont `xml:"latin" json:"latin,omitempty"`
}

// Typeface returns the latin typeface, or "" if none is set.
func (c *CharacterProperties) Typeface() string {
	if c == nil || c.Latin == nil {
		return ""
	}
	return c.Latin.Typeface
}

// TextFont directly maps the latin element.
type TextFont struct {
	Typeface string `xml:"typeface,attr" json:"typeface"`
}
