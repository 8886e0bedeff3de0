// Package figure provides composite figure files and builds calculators
// from them.
package figure

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"figcentroid/internal/calculator"
	"figcentroid/internal/element"
	"figcentroid/internal/shape"
	"figcentroid/pkg/geometry"
)

// CurrentVersion is the figure file format version written by Save.
const CurrentVersion = 1

// ErrUnknownKind is returned for a shape kind the builder does not know.
var ErrUnknownKind = errors.New("unknown shape kind")

// Shape kinds accepted in figure files.
const (
	KindRectangle         = "rectangle"
	KindRectangleVertices = "rectangle_vertices"
	KindCircle            = "circle"
	KindSemicircle        = "semicircle"
	KindTriangle          = "triangle"
	KindRightTriangle     = "right_triangle"
	KindCustom            = "custom"
)

// File is a composite figure description (.yaml or .json).
type File struct {
	Version     int       `yaml:"version"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Modified    time.Time `yaml:"modified,omitempty"`
	Shapes      []Shape   `yaml:"shapes"`
}

// Shape is one entry of a figure file. Which fields apply depends on Kind.
type Shape struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Subtract bool   `yaml:"subtract,omitempty"`

	// rectangle
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	// circle, semicircle
	Radius      float64 `yaml:"radius,omitempty"`
	Orientation string  `yaml:"orientation,omitempty"`

	// rectangle, circle, semicircle
	Center geometry.Point2D `yaml:"center,omitempty"`

	// rectangle_vertices (4), triangle (3)
	Vertices []geometry.Point2D `yaml:"vertices,omitempty"`

	// right_triangle: legs Base x Height from Corner into Quadrant
	Base     float64          `yaml:"base,omitempty"`
	Corner   geometry.Point2D `yaml:"corner,omitempty"`
	Quadrant string           `yaml:"quadrant,omitempty"`

	// custom
	Area     float64          `yaml:"area,omitempty"`
	Centroid geometry.Point2D `yaml:"centroid,omitempty"`
}

// New creates an empty figure.
func New(name string) *File {
	return &File{Version: CurrentVersion, Name: name}
}

// Parse decodes a figure from YAML or JSON.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse figure: %w", err)
	}
	if f.Version == 0 {
		f.Version = CurrentVersion
	}
	if f.Version > CurrentVersion {
		return nil, fmt.Errorf("figure version %d is newer than supported version %d", f.Version, CurrentVersion)
	}
	return &f, nil
}

// Load reads a figure file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Save writes the figure as YAML.
func (f *File) Save(path string) error {
	f.Modified = time.Now().UTC()

	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Build converts every shape into an element, in file order. A nil logger
// disables logging.
func (f *File) Build(logger *zap.Logger) (*calculator.Calculator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	calc := calculator.New()
	for i, s := range f.Shapes {
		e, err := s.element(logger)
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, s.Name, err)
		}
		logger.Debug("element added",
			zap.String("name", e.Name),
			zap.String("sign", e.Sign.String()),
			zap.Float64("area", e.Area),
			zap.Float64("cx", e.Centroid.X),
			zap.Float64("cy", e.Centroid.Y))
		calc.Add(e)
	}
	return calc, nil
}

func (s Shape) element(logger *zap.Logger) (element.Element, error) {
	sign := element.SignOf(s.Subtract)

	switch strings.ToLower(s.Kind) {
	case KindRectangle:
		return shape.Rectangle(s.Name, s.Width, s.Height, s.Center, sign), nil

	case KindRectangleVertices:
		if len(s.Vertices) != 4 {
			return element.Element{}, fmt.Errorf("%s needs 4 vertices, got %d", KindRectangleVertices, len(s.Vertices))
		}
		v := s.Vertices
		if !geometry.IsSimpleQuad(v[0], v[1], v[2], v[3]) {
			logger.Warn("vertices are not in winding order, area will be wrong",
				zap.String("name", s.Name))
		} else if !geometry.IsConvex(v) {
			logger.Warn("quadrilateral is not convex, vertex mean is not its centroid",
				zap.String("name", s.Name))
		}
		return shape.RectangleByVertices(s.Name, v[0], v[1], v[2], v[3], sign), nil

	case KindCircle:
		return shape.Circle(s.Name, s.Radius, s.Center, sign), nil

	case KindSemicircle:
		orient, err := shape.ParseOrientation(s.Orientation)
		if err != nil {
			return element.Element{}, err
		}
		return shape.Semicircle(s.Name, s.Radius, s.Center, orient, sign)

	case KindTriangle:
		if len(s.Vertices) != 3 {
			return element.Element{}, fmt.Errorf("%s needs 3 vertices, got %d", KindTriangle, len(s.Vertices))
		}
		v := s.Vertices
		return shape.Triangle(s.Name, v[0], v[1], v[2], sign), nil

	case KindRightTriangle:
		quad, err := shape.ParseQuadrant(s.Quadrant)
		if err != nil {
			return element.Element{}, err
		}
		return shape.RightTriangle(s.Name, s.Base, s.Height, s.Corner, quad, sign)

	case KindCustom:
		return shape.Custom(s.Name, s.Area, s.Centroid, sign), nil
	}

	return element.Element{}, fmt.Errorf("%w %q", ErrUnknownKind, s.Kind)
}
