// Package xlshape models a simple shape in a SpreadsheetML drawing: its default
// prototype record, its preset geometry and the projection of rich text into the
// shape's text body.
package xlshape

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	// DefaultLanguage is the language tag written on every projected run.
	DefaultLanguage = "en-US"
	// DefaultTypeface is used for formatted runs that declare no font.
	DefaultTypeface = "Arial"
	// DefaultSize is the run size for unformatted text, in hundredths of a point.
	DefaultSize = 1100
)

// Options configures text projection and logging.
type Options struct {
	// Language is the language tag written on projected runs.
	// If empty, defaults to DefaultLanguage.
	Language string
	// Typeface is the typeface for formatted runs without a declared font.
	// If empty, defaults to DefaultTypeface.
	Typeface string
	// Size is the run size for unformatted text in hundredths of a point.
	// If zero, defaults to DefaultSize.
	Size int
	// Logger receives debug output. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default shape options.
func DefaultOptions() Options {
	return Options{
		Language: DefaultLanguage,
		Typeface: DefaultTypeface,
		Size:     DefaultSize,
	}
}

// Validate checks that the configured values are usable.
func (o Options) Validate() error {
	if _, err := language.Parse(o.ResolvedLanguage()); err != nil {
		return fmt.Errorf("%w: language %q: %v", ErrInvalidArgument, o.Language, err)
	}
	if o.Size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidArgument, o.Size)
	}
	return nil
}

// ResolvedLanguage returns the language tag to write on runs.
func (o Options) ResolvedLanguage() string {
	if o.Language != "" {
		return o.Language
	}
	return DefaultLanguage
}

// ResolvedTypeface returns the fallback typeface for formatted runs.
func (o Options) ResolvedTypeface() string {
	if o.Typeface != "" {
		return o.Typeface
	}
	return DefaultTypeface
}

// ResolvedSize returns the size for unformatted text.
func (o Options) ResolvedSize() int {
	if o.Size != 0 {
		return o.Size
	}
	return DefaultSize
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
