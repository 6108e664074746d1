package xlshape

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/xlshape-go/pkg/xlshape/models"
)

// RichTextString is a run-formatted string as stored in a workbook's shared
// strings, bound to the style table used to resolve font references.
type RichTextString struct {
	st     *models.RichText
	styles StyleTable
}

// FormattingRun describes one formatted run of a RichTextString. Start is a
// character (rune) offset into the full string.
type FormattingRun struct {
	Start int
	Text  string
	Props *models.RunProperties
}

// NewRichTextString returns an unformatted rich text value holding s.
func NewRichTextString(s string) *RichTextString {
	return &RichTextString{st: &models.RichText{T: s}}
}

// NewRichTextStringFromModel wraps an existing rich text element. The element is
// not copied; changes through the returned value are visible in rt.
func NewRichTextStringFromModel(rt *models.RichText) *RichTextString {
	if rt == nil {
		rt = &models.RichText{}
	}
	return &RichTextString{st: rt}
}

// Model returns the underlying rich text element.
func (r *RichTextString) Model() *models.RichText {
	return r.st
}

// String returns the full text content.
func (r *RichTextString) String() string {
	if len(r.st.R) > 0 {
		return r.st.RunText()
	}
	return r.st.T
}

// Length returns the length of the text in characters.
func (r *RichTextString) Length() int {
	return utf8.RuneCountInString(r.String())
}

// NumFormattingRuns returns the number of formatting runs. Zero means the whole
// string uses the default formatting.
func (r *RichTextString) NumFormattingRuns() int {
	return len(r.st.R)
}

// IndexOfFormattingRun returns the start offset of run i, or -1 if i is out of range.
func (r *RichTextString) IndexOfFormattingRun(i int) int {
	if i < 0 || i >= len(r.st.R) {
		return -1
	}
	start := 0
	for _, run := range r.st.R[:i] {
		start += utf8.RuneCountInString(run.T)
	}
	return start
}

// LengthOfFormattingRun returns the length of run i, or -1 if i is out of range.
func (r *RichTextString) LengthOfFormattingRun(i int) int {
	if i < 0 || i >= len(r.st.R) {
		return -1
	}
	return utf8.RuneCountInString(r.st.R[i].T)
}

// FormattingRun returns run i.
func (r *RichTextString) FormattingRun(i int) (FormattingRun, error) {
	if i < 0 || i >= len(r.st.R) {
		return FormattingRun{}, fmt.Errorf("%w: formatting run %d out of range [0,%d)", ErrInvalidArgument, i, len(r.st.R))
	}
	return FormattingRun{
		Start: r.IndexOfFormattingRun(i),
		Text:  r.st.R[i].T,
		Props: r.st.R[i].RPr,
	}, nil
}

// SetStylesTable binds the value to the style table of its owning workbook.
func (r *RichTextString) SetStylesTable(styles StyleTable) {
	r.styles = styles
}

// StylesTable returns the bound style table, or nil.
func (r *RichTextString) StylesTable() StyleTable {
	return r.styles
}

// Validate reports whether the plain text and the formatting runs agree.
func (r *RichTextString) Validate() error {
	if r == nil || r.st == nil {
		return fmt.Errorf("%w: nil rich text", ErrInvalidArgument)
	}
	if len(r.st.R) > 0 && r.st.T != "" && r.st.RunText() != r.st.T {
		return fmt.Errorf("%w: formatting runs cover %d of %d characters",
			ErrInvalidArgument, utf8.RuneCountInString(r.st.RunText()), utf8.RuneCountInString(r.st.T))
	}
	return nil
}

// ApplyFont formats the characters in [start, end) with props, splitting runs
// at the range boundaries and merging neighbours left with equal properties.
// props is copied. A nil props clears direct formatting in the range.
func (r *RichTextString) ApplyFont(start, end int, props *models.RunProperties) error {
	length := r.Length()
	if start < 0 || end > length || start > end {
		return fmt.Errorf("%w: range [%d,%d) outside text of length %d", ErrInvalidArgument, start, end, length)
	}
	if start == end {
		return nil
	}

	runs := r.st.R
	if len(runs) == 0 {
		runs = []models.RichTextRun{{T: r.st.T}}
	}

	out := make([]models.RichTextRun, 0, len(runs)+2)
	pos := 0
	for _, run := range runs {
		text := []rune(run.T)
		runStart, runEnd := pos, pos+len(text)
		pos = runEnd

		lo := clamp(start, runStart, runEnd) - runStart
		hi := clamp(end, runStart, runEnd) - runStart
		for _, seg := range []struct {
			text  string
			props *models.RunProperties
		}{
			{string(text[:lo]), run.RPr},
			{string(text[lo:hi]), props},
			{string(text[hi:]), run.RPr},
		} {
			var err error
			if out, err = appendRun(out, seg.text, seg.props); err != nil {
				return err
			}
		}
	}

	r.st.R = out
	r.st.T = ""
	return nil
}

// ApplyFontIndex formats [start, end) with the font of cell style index,
// resolved through the bound style table.
func (r *RichTextString) ApplyFontIndex(start, end, index int) error {
	if r.styles == nil {
		return fmt.Errorf("%w: rich text is not bound to a style table", ErrInvalidState)
	}
	props, err := r.styles.Font(index)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return r.ApplyFont(start, end, props)
}

// ClearFormatting drops all runs, keeping the text.
func (r *RichTextString) ClearFormatting() {
	r.st.T = r.String()
	r.st.R = nil
}

func appendRun(runs []models.RichTextRun, text string, props *models.RunProperties) ([]models.RichTextRun, error) {
	if text == "" {
		return runs, nil
	}
	if n := len(runs); n > 0 && reflect.DeepEqual(runs[n-1].RPr, props) {
		runs[n-1].T += text
		return runs, nil
	}
	c, err := cloneRunProperties(props)
	if err != nil {
		return nil, err
	}
	return append(runs, models.RichTextRun{RPr: c, T: text}), nil
}

func cloneRunProperties(p *models.RunProperties) (*models.RunProperties, error) {
	if p == nil {
		return nil, nil
	}
	var c models.RunProperties
	if err := deepcopy.Copy(&c, *p); err != nil {
		return nil, fmt.Errorf("copy run properties: %w", err)
	}
	return &c, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
