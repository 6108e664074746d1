package xlshape

import (
	"fmt"

	"github.com/ukaji3/xlshape-go/pkg/xlshape/models"
	"go.uber.org/zap"
)

// SetText replaces the shape's paragraphs with a single paragraph holding one
// run per formatting run of text. Unformatted text becomes one run with the
// default language and size. Formatted runs carry the language plus the run's
// bold, italic and first font, falling back to the default typeface.
// Underline is not carried over.
//
// text is bound to styles before projection. Inputs are checked first; on
// error the shape is left untouched.
func (s *SimpleShape) SetText(text *RichTextString, styles StyleTable) error {
	name := s.Name()
	if text == nil {
		return NewShapeError(name, "set_text", fmt.Errorf("%w: nil rich text", ErrInvalidArgument))
	}
	if styles == nil {
		return NewShapeError(name, "set_text", fmt.Errorf("%w: rich text has no style table", ErrInvalidArgument))
	}
	if err := text.Validate(); err != nil {
		return NewShapeError(name, "set_text", err)
	}
	if err := s.opts.Validate(); err != nil {
		return NewShapeError(name, "set_text", err)
	}
	if s.record == nil || s.record.TxBody == nil {
		return NewShapeError(name, "set_text", fmt.Errorf("%w: shape has no text body", ErrInvalidState))
	}

	text.SetStylesTable(styles)
	p := projectParagraph(text, s.opts)
	s.record.TxBody.P = []models.Paragraph{p}

	s.opts.logger().Debug("set shape text",
		zap.String("shape", name),
		zap.Int("formatting_runs", text.NumFormattingRuns()),
		zap.Int("runs", len(p.R)),
	)
	return nil
}

func projectParagraph(text *RichTextString, opts Options) models.Paragraph {
	var p models.Paragraph
	lang := opts.ResolvedLanguage()

	if text.NumFormattingRuns() == 0 {
		size := opts.ResolvedSize()
		p.R = []models.Run{{
			RPr: &models.CharacterProperties{Lang: lang, Sz: &size},
			T:   text.String(),
		}}
		return p
	}

	runs := text.Model().R
	p.R = make([]models.Run, 0, len(runs))
	for i := range runs {
		lt := &runs[i]
		if lt.RPr == nil {
			lt.RPr = &models.RunProperties{}
		}
		rPr := &models.CharacterProperties{Lang: lang}
		applyAttributes(lt.RPr, rPr, opts.ResolvedTypeface())
		p.R = append(p.R, models.Run{RPr: rPr, T: lt.T})
	}
	return p
}

// applyAttributes maps shared string run properties onto DrawingML character
// properties.
func applyAttributes(pr *models.RunProperties, rPr *models.CharacterProperties, typeface string) {
	if pr.B != nil {
		b := pr.B.Value()
		rPr.B = &b
	}
	if pr.I != nil {
		i := pr.I.Value()
		rPr.I = &i
	}
	if name := pr.FontName(); name != "" {
		typeface = name
	}
	rPr.Latin = &models.TextFont{Typeface: typeface}
}
