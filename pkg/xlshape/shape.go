package xlshape

import (
	"fmt"

	"github.com/ukaji3/xlshape-go/pkg/xlshape/models"
)

// HasShapeProperties is implemented by every drawing shape variant that carries
// an spPr element.
type HasShapeProperties interface {
	ShapeProperties() *models.ShapeProperties
}

// SimpleShape is a shape with a preset geometry in a SpreadsheetML drawing. It
// holds a reference into a record owned by the drawing and edits it in place.
// A SimpleShape is not safe for concurrent use.
type SimpleShape struct {
	record *models.ShapeRecord
	opts   Options
}

var _ HasShapeProperties = (*SimpleShape)(nil)

// NewSimpleShape wraps record, which remains owned by the caller's drawing tree.
func NewSimpleShape(record *models.ShapeRecord, opts Options) *SimpleShape {
	return &SimpleShape{record: record, opts: opts}
}

// NewShape creates a shape from a private copy of the prototype record.
func NewShape(opts Options) (*SimpleShape, error) {
	rec, err := NewShapeRecord()
	if err != nil {
		return nil, err
	}
	return NewSimpleShape(rec, opts), nil
}

// Record returns the underlying shape record.
func (s *SimpleShape) Record() *models.ShapeRecord {
	return s.record
}

// Name returns the shape name.
func (s *SimpleShape) Name() string {
	return s.record.Name()
}

// ShapeProperties implements HasShapeProperties.
func (s *SimpleShape) ShapeProperties() *models.ShapeProperties {
	if s.record == nil {
		return nil
	}
	return s.record.SpPr
}

// ShapeType returns the preset geometry of the shape.
func (s *SimpleShape) ShapeType() (models.ShapeType, error) {
	geom, err := s.presetGeometry()
	if err != nil {
		return 0, NewShapeError(s.Name(), "shape_type", err)
	}
	return geom.Prst, nil
}

// SetShapeType replaces the preset geometry of the shape.
func (s *SimpleShape) SetShapeType(t models.ShapeType) error {
	if !t.IsValid() {
		return NewShapeError(s.Name(), "set_shape_type", fmt.Errorf("%w: unknown shape type %d", ErrInvalidArgument, int(t)))
	}
	geom, err := s.presetGeometry()
	if err != nil {
		return NewShapeError(s.Name(), "set_shape_type", err)
	}
	geom.Prst = t
	return nil
}

func (s *SimpleShape) presetGeometry() (*models.PresetGeometry, error) {
	spPr := s.ShapeProperties()
	if spPr == nil {
		return nil, fmt.Errorf("%w: shape has no properties", ErrInvalidState)
	}
	if spPr.PrstGeom == nil {
		return nil, fmt.Errorf("%w: shape has no preset geometry", ErrInvalidState)
	}
	return spPr.PrstGeom, nil
}

// SetSize sets the shape extent in pixels.
func (s *SimpleShape) SetSize(width, height int) error {
	xfrm, err := s.transform()
	if err != nil {
		return NewShapeError(s.Name(), "set_size", err)
	}
	xfrm.Ext = &models.PositiveSize2D{Cx: models.PixelsToEMU(width), Cy: models.PixelsToEMU(height)}
	return nil
}

// SetOffset sets the shape offset in pixels.
func (s *SimpleShape) SetOffset(x, y int) error {
	xfrm, err := s.transform()
	if err != nil {
		return NewShapeError(s.Name(), "set_offset", err)
	}
	xfrm.Off = &models.Point2D{X: models.PixelsToEMU(x), Y: models.PixelsToEMU(y)}
	return nil
}

func (s *SimpleShape) transform() (*models.Transform2D, error) {
	spPr := s.ShapeProperties()
	if spPr == nil {
		return nil, fmt.Errorf("%w: shape has no properties", ErrInvalidState)
	}
	if spPr.Xfrm == nil {
		spPr.Xfrm = &models.Transform2D{}
	}
	return spPr.Xfrm, nil
}

// SetName sets the drawing object id and name.
func (s *SimpleShape) SetName(id int, name string) error {
	if s.record == nil || s.record.NvSpPr == nil {
		return NewShapeError(s.Name(), "set_name", fmt.Errorf("%w: shape has no non-visual properties", ErrInvalidState))
	}
	s.record.NvSpPr.CNvPr.ID = id
	s.record.NvSpPr.CNvPr.Name = name
	return nil
}
