// Package shape converts shape parameters into figure elements using
// closed-form area and centroid formulas.
package shape

import (
	"fmt"
	"math"

	"figcentroid/internal/element"
	"figcentroid/pkg/geometry"
)

// Rectangle builds an element from a rectangle's dimensions and center.
func Rectangle(name string, width, height float64, center geometry.Point2D, sign element.Sign) element.Element {
	return element.New(name, width*height, center, sign)
}

// RectangleByVertices builds an element from four vertices given in
// winding order. The area uses the shoelace formula. The centroid is the
// mean of the vertices, which is exact only for parallelograms.
func RectangleByVertices(name string, v1, v2, v3, v4 geometry.Point2D, sign element.Sign) element.Element {
	quad := []geometry.Point2D{v1, v2, v3, v4}
	return element.New(name, geometry.ShoelaceArea(quad), geometry.Centroid(quad), sign)
}

// Circle builds a full circle element.
func Circle(name string, radius float64, center geometry.Point2D, sign element.Sign) element.Element {
	return element.New(name, math.Pi*radius*radius, center, sign)
}

// SemicircleOffset is the distance from a semicircle's diameter midpoint
// to its centroid.
func SemicircleOffset(radius float64) float64 {
	return 4 * radius / (3 * math.Pi)
}

// Semicircle builds a half-disc element whose diameter is centered on
// center and whose curved side faces orient.
func Semicircle(name string, radius float64, center geometry.Point2D, orient Orientation, sign element.Sign) (element.Element, error) {
	if !orient.Valid() {
		return element.Element{}, fmt.Errorf("semicircle %q: %w: %s", name, ErrUnknownOrientation, orient)
	}
	dx, dy := orient.unit()
	offset := SemicircleOffset(radius)
	centroid := center.Add(geometry.Point2D{X: dx, Y: dy}.Scale(offset))
	return element.New(name, math.Pi*radius*radius/2, centroid, sign), nil
}

// Triangle builds an element from three vertices in any order.
func Triangle(name string, a, b, c geometry.Point2D, sign element.Sign) element.Element {
	area := geometry.TriangleArea(a, b, c)
	return element.New(name, area, geometry.Centroid([]geometry.Point2D{a, b, c}), sign)
}

// RightTriangle builds a right triangle with its right angle at corner and
// legs of length base (along X) and height (along Y) extending into quad.
func RightTriangle(name string, base, height float64, corner geometry.Point2D, quad Quadrant, sign element.Sign) (element.Element, error) {
	sx, sy, ok := quad.signs()
	if !ok {
		return element.Element{}, fmt.Errorf("right triangle %q: unknown quadrant %d", name, int(quad))
	}
	b := corner.Add(geometry.Point2D{X: sx * base})
	h := corner.Add(geometry.Point2D{Y: sy * height})
	return Triangle(name, corner, b, h, sign), nil
}

// Custom builds an element from a known area and centroid. Nothing is
// validated.
func Custom(name string, area float64, centroid geometry.Point2D, sign element.Sign) element.Element {
	return element.New(name, area, centroid, sign)
}
