package xlshape

import (
	"fmt"

	"github.com/ukaji3/xlshape-go/pkg/xlshape/models"
	"github.com/ukaji3/xlshape-go/pkg/xlshape/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// AddShape writes s into the drawing of sheet, anchored at cell, using the
// shape's geometry, extent, offset and the runs of its first paragraph. A
// zero extent lets excelize apply its default size.
func AddShape(f *excelize.File, sheet, cell string, s *SimpleShape) error {
	t, err := s.ShapeType()
	if err != nil {
		return err
	}

	opts := &excelize.Shape{
		Cell: cell,
		Type: t.String(),
	}
	rec := s.Record()
	if xfrm := rec.SpPr.Xfrm; xfrm != nil {
		if xfrm.Ext != nil {
			opts.Width = uint(models.EMUToPixels(xfrm.Ext.Cx))
			opts.Height = uint(models.EMUToPixels(xfrm.Ext.Cy))
		}
		if xfrm.Off != nil {
			opts.Format.OffsetX = models.EMUToPixels(xfrm.Off.X)
			opts.Format.OffsetY = models.EMUToPixels(xfrm.Off.Y)
		}
	}
	if rec.TxBody != nil && len(rec.TxBody.P) > 0 {
		for _, r := range rec.TxBody.P[0].R {
			opts.Paragraph = append(opts.Paragraph, excelize.RichTextRun{
				Font: parser.FontFromCharacterProperties(r.RPr),
				Text: r.T,
			})
		}
	}

	if err := f.AddShape(sheet, opts); err != nil {
		return NewShapeError(s.Name(), "add_shape", fmt.Errorf("%s!%s: %w", sheet, cell, err))
	}
	s.opts.logger().Debug("added shape to workbook",
		zap.String("shape", s.Name()),
		zap.String("sheet", sheet),
		zap.String("cell", cell),
		zap.String("type", t.String()),
	)
	return nil
}
