// Package element defines the signed area contribution of one shape to a
// composite figure.
package element

import (
	"fmt"

	"figcentroid/pkg/geometry"
)

// Sign says whether an element adds to or removes from the figure.
type Sign int

const (
	// Additive elements contribute positive area.
	Additive Sign = iota
	// Subtractive elements model holes and cut-outs.
	Subtractive
)

// String returns "+" or "-".
func (s Sign) String() string {
	if s == Subtractive {
		return "-"
	}
	return "+"
}

// SignOf maps a subtract flag to a Sign.
func SignOf(subtract bool) Sign {
	if subtract {
		return Subtractive
	}
	return Additive
}

// Element is one named contribution to a composite figure. Values are
// never mutated after construction.
type Element struct {
	Name     string
	Area     float64
	Centroid geometry.Point2D
	Sign     Sign
}

// New creates an Element.
func New(name string, area float64, centroid geometry.Point2D, sign Sign) Element {
	return Element{Name: name, Area: area, Centroid: centroid, Sign: sign}
}

// SignedArea returns the area, negated for subtractive elements.
func (e Element) SignedArea() float64 {
	if e.Sign == Subtractive {
		return -e.Area
	}
	return e.Area
}

// MomentX returns the first moment of area about the Y axis (A*Cx).
func (e Element) MomentX() float64 {
	return e.SignedArea() * e.Centroid.X
}

// MomentY returns the first moment of area about the X axis (A*Cy).
func (e Element) MomentY() float64 {
	return e.SignedArea() * e.Centroid.Y
}

func (e Element) String() string {
	return fmt.Sprintf("%s(%s%.4g @ %.4g,%.4g)", e.Name, e.Sign, e.Area, e.Centroid.X, e.Centroid.Y)
}
