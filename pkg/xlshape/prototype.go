package xlshape

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/xlshape-go/pkg/xlshape/models"
)

// The prototype is built at most once per process and kept until exit. A failed
// build leaves the cell empty so the next call retries.
var (
	prototypeMu sync.Mutex
	prototype   atomic.Pointer[models.ShapeRecord]

	// buildPrototypeFunc is swapped in tests.
	buildPrototypeFunc = buildPrototype
)

// Prototype returns the shared default record for new auto-shapes: a zero-sized
// rectangle at the origin with the standard theme style references and an empty
// centered paragraph.
//
// The returned record is shared by every caller and must not be modified. Use
// NewShapeRecord to obtain a private copy.
func Prototype() (*models.ShapeRecord, error) {
	if p := prototype.Load(); p != nil {
		return p, nil
	}

	prototypeMu.Lock()
	defer prototypeMu.Unlock()

	if p := prototype.Load(); p != nil {
		return p, nil
	}
	p, err := buildPrototypeFunc()
	if err != nil {
		return nil, NewShapeError("", "prototype", fmt.Errorf("%w: %v", ErrPrototype, err))
	}
	prototype.Store(p)
	return p, nil
}

// NewShapeRecord returns a deep copy of the prototype that the caller owns.
func NewShapeRecord() (*models.ShapeRecord, error) {
	p, err := Prototype()
	if err != nil {
		return nil, err
	}
	var rec models.ShapeRecord
	if err := deepcopy.Copy(&rec, *p); err != nil {
		return nil, NewShapeError(p.Name(), "prototype", fmt.Errorf("%w: copy: %v", ErrPrototype, err))
	}
	return &rec, nil
}

func buildPrototype() (*models.ShapeRecord, error) {
	rtl := false
	size := DefaultSize

	shape := &models.ShapeRecord{
		NvSpPr: &models.NonVisualShape{
			CNvPr: models.NonVisualDrawingProps{
				ID:   1,
				Name: "Shape 1",
			},
			CNvSpPr: &models.NonVisualShapeDrawingProps{},
		},
		SpPr: &models.ShapeProperties{
			Xfrm: &models.Transform2D{
				Off: &models.Point2D{X: 0, Y: 0},
				Ext: &models.PositiveSize2D{Cx: 0, Cy: 0},
			},
			PrstGeom: &models.PresetGeometry{
				Prst:  models.ShapeTypeRect,
				AvLst: &models.GeomGuideList{},
			},
		},
		Style: &models.ShapeStyle{
			LnRef: models.StyleMatrixReference{
				Idx: 2,
				SchemeClr: &models.SchemeColor{
					Val:   models.SchemeColorAccent1,
					Shade: &models.PercentageValue{Val: 50000},
				},
			},
			FillRef: models.StyleMatrixReference{
				Idx:       1,
				SchemeClr: &models.SchemeColor{Val: models.SchemeColorAccent1},
			},
			EffectRef: models.StyleMatrixReference{
				Idx:       0,
				SchemeClr: &models.SchemeColor{Val: models.SchemeColorAccent1},
			},
			FontRef: models.FontReference{
				Idx:       models.FontCollectionMinor,
				SchemeClr: &models.SchemeColor{Val: models.SchemeColorLt1},
			},
		},
		TxBody: &models.TextBody{
			BodyPr: &models.TextBodyProperties{
				Anchor: models.TextAnchorCenter,
				RtlCol: &rtl,
			},
			P: []models.Paragraph{{
				PPr: &models.ParagraphProperties{Algn: models.TextAlignCenter},
				EndParaRPr: &models.CharacterProperties{
					Lang: DefaultLanguage,
					Sz:   &size,
				},
			}},
			LstStyle: &models.TextListStyle{},
		},
	}
	return shape, nil
}
