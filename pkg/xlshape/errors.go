package xlshape

import (
	"errors"
	"fmt"
)

// ErrInvalidState indicates the shape record is missing a subtree the operation requires.
var ErrInvalidState = errors.New("invalid shape state")

// ErrInvalidArgument indicates malformed input, such as an inconsistent rich text value.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrPrototype indicates the default shape record could not be built.
var ErrPrototype = errors.New("prototype construction failed")

// ShapeError represents an error raised by an operation on a shape.
type ShapeError struct {
	Shape string
	Op    string // "shape_type", "set_shape_type", "set_size", "set_offset", "set_name", "set_text", "prototype", "add_shape"
	Err   error
}

func (e *ShapeError) Error() string {
	if e.Shape == "" {
		return fmt.Sprintf("shape error (%s): %v", e.Op, e.Err)
	}
	return fmt.Sprintf("shape error in %q (%s): %v", e.Shape, e.Op, e.Err)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

// NewShapeError creates a new ShapeError.
func NewShapeError(shape, op string, err error) *ShapeError {
	return &ShapeError{
		Shape: shape,
		Op:    op,
		Err:   err,
	}
}
