// Package config loads shape definition files.
package config

import (
	"fmt"
	"os"

	"github.com/ukaji3/xlshape-go/pkg/xlshape/models"
	"gopkg.in/yaml.v3"
)

// DefaultSheet is used when a definition file names no sheet.
const DefaultSheet = "Sheet1"

// File is a shape definition file.
type File struct {
	// Sheet is the worksheet receiving shapes without their own sheet.
	Sheet string `yaml:"sheet"`
	// Language overrides the language tag written on text runs.
	Language string `yaml:"language"`
	// Shapes lists the shapes to create, in order.
	Shapes []Shape `yaml:"shapes"`
}

// Shape describes one shape to create.
type Shape struct {
	Sheet  string `yaml:"sheet"`
	Cell   string `yaml:"cell"`
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// Text is used when Runs is empty.
	Text string `yaml:"text"`
	Runs []Run  `yaml:"runs"`
}

// Run is one formatted text segment.
type Run struct {
	Text   string  `yaml:"text"`
	Bold   *bool   `yaml:"bold"`
	Italic *bool   `yaml:"italic"`
	Font   string  `yaml:"font"`
	Size   float64 `yaml:"size"`
}

// Load reads and validates a definition file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates definition file content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse shape definitions: %w", err)
	}
	if f.Sheet == "" {
		f.Sheet = DefaultSheet
	}
	for i := range f.Shapes {
		s := &f.Shapes[i]
		if s.Sheet == "" {
			s.Sheet = f.Sheet
		}
		if s.Type == "" {
			s.Type = models.ShapeTypeRect.String()
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i+1, err)
		}
	}
	return &f, nil
}

// Validate checks a single shape definition.
func (s Shape) Validate() error {
	if s.Cell == "" {
		return fmt.Errorf("missing cell")
	}
	if _, err := models.ParseShapeType(s.Type); err != nil {
		return err
	}
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("negative size %dx%d", s.Width, s.Height)
	}
	return nil
}

// ShapeType returns the parsed preset geometry.
func (s Shape) ShapeType() models.ShapeType {
	t, _ := models.ParseShapeType(s.Type)
	return t
}

// RichText returns the shape text as a shared string rich text value.
func (s Shape) RichText() *models.RichText {
	if len(s.Runs) == 0 {
		return &models.RichText{T: s.Text}
	}
	rt := &models.RichText{R: make([]models.RichTextRun, 0, len(s.Runs))}
	for _, r := range s.Runs {
		rt.R = append(rt.R, models.RichTextRun{RPr: r.properties(), T: r.Text})
	}
	return rt
}

func (r Run) properties() *models.RunProperties {
	props := &models.RunProperties{}
	if r.Font != "" {
		props.RFont = &models.AttrValString{Val: r.Font}
	}
	if r.Bold != nil {
		props.B = models.NewAttrValBool(*r.Bold)
	}
	if r.Italic != nil {
		props.I = models.NewAttrValBool(*r.Italic)
	}
	if r.Size > 0 {
		props.Sz = &models.AttrValFloat{Val: r.Size}
	}
	return props
}
