// Package calculator aggregates signed-area elements into the centroid of
// a composite figure.
package calculator

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"figcentroid/internal/element"
	"figcentroid/internal/shape"
	"figcentroid/pkg/geometry"
)

// ErrZeroArea is returned when additive and subtractive areas cancel
// exactly, leaving the composite centroid undefined.
var ErrZeroArea = errors.New("invalid geometry: total signed area is zero")

// Calculator holds the ordered elements of one composite figure.
// It is not safe for concurrent use.
type Calculator struct {
	elements []element.Element
}

// New creates an empty Calculator.
func New() *Calculator {
	return &Calculator{}
}

// Add appends an element.
func (c *Calculator) Add(e element.Element) {
	c.elements = append(c.elements, e)
}

// Len returns the number of elements.
func (c *Calculator) Len() int {
	return len(c.elements)
}

// Elements returns a copy of the elements in insertion order.
func (c *Calculator) Elements() []element.Element {
	out := make([]element.Element, len(c.elements))
	copy(out, c.elements)
	return out
}

func (c *Calculator) AddRectangle(name string, width, height float64, center geometry.Point2D, sign element.Sign) {
	c.Add(shape.Rectangle(name, width, height, center, sign))
}

func (c *Calculator) AddRectangleByVertices(name string, v1, v2, v3, v4 geometry.Point2D, sign element.Sign) {
	c.Add(shape.RectangleByVertices(name, v1, v2, v3, v4, sign))
}

func (c *Calculator) AddCircle(name string, radius float64, center geometry.Point2D, sign element.Sign) {
	c.Add(shape.Circle(name, radius, center, sign))
}

// AddSemicircle fails only for an orientation outside the declared set.
func (c *Calculator) AddSemicircle(name string, radius float64, center geometry.Point2D, orient shape.Orientation, sign element.Sign) error {
	e, err := shape.Semicircle(name, radius, center, orient, sign)
	if err != nil {
		return err
	}
	c.Add(e)
	return nil
}

func (c *Calculator) AddTriangle(name string, p1, p2, p3 geometry.Point2D, sign element.Sign) {
	c.Add(shape.Triangle(name, p1, p2, p3, sign))
}

func (c *Calculator) AddRightTriangle(name string, base, height float64, corner geometry.Point2D, quad shape.Quadrant, sign element.Sign) error {
	e, err := shape.RightTriangle(name, base, height, corner, quad, sign)
	if err != nil {
		return err
	}
	c.Add(e)
	return nil
}

func (c *Calculator) AddCustom(name string, area float64, centroid geometry.Point2D, sign element.Sign) {
	c.Add(shape.Custom(name, area, centroid, sign))
}

// Totals holds the aggregate signed area and first moments of a figure.
type Totals struct {
	Area    float64
	MomentX float64
	MomentY float64
}

// Totals sums signed areas and area-weighted centroid coordinates.
func (c *Calculator) Totals() Totals {
	n := len(c.elements)
	areas := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, e := range c.elements {
		areas[i] = e.SignedArea()
		xs[i] = e.Centroid.X
		ys[i] = e.Centroid.Y
	}
	if n == 0 {
		return Totals{}
	}
	return Totals{
		Area:    floats.Sum(areas),
		MomentX: floats.Dot(areas, xs),
		MomentY: floats.Dot(areas, ys),
	}
}

// Centroid returns the area-weighted centroid of all elements.
// An empty calculator yields the origin. ErrZeroArea is returned when the
// total signed area is exactly zero; near-zero totals are not rejected.
func (c *Calculator) Centroid() (geometry.Point2D, error) {
	if len(c.elements) == 0 {
		return geometry.Point2D{}, nil
	}

	t := c.Totals()
	if t.Area == 0 {
		return geometry.Point2D{}, ErrZeroArea
	}

	return geometry.Point2D{
		X: t.MomentX / t.Area,
		Y: t.MomentY / t.Area,
	}, nil
}
