package shape

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOrientation is returned for orientation tags outside
// up, down, left and right.
var ErrUnknownOrientation = errors.New("unknown orientation")

// Orientation is the direction a semicircle's curved side faces.
type Orientation int

const (
	Up Orientation = iota
	Down
	Left
	Right
)

var orientationNames = [...]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (o Orientation) String() string {
	if o.Valid() {
		return orientationNames[o]
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Valid reports whether o is one of the four declared orientations.
func (o Orientation) Valid() bool {
	return o >= Up && o <= Right
}

// ParseOrientation converts a tag such as "up" into an Orientation.
// Matching is case-insensitive; an empty tag means Up.
func ParseOrientation(tag string) (Orientation, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return Up, nil
	}
	for i, name := range orientationNames {
		if name == tag {
			return Orientation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrientation, tag)
}

// unit returns the direction vector the centroid moves along.
func (o Orientation) unit() (dx, dy float64) {
	switch o {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Quadrant selects which way the legs of a right triangle extend from its
// right-angle corner.
type Quadrant int

const (
	// QuadrantI extends toward +X and +Y.
	QuadrantI Quadrant = iota + 1
	QuadrantII
	QuadrantIII
	QuadrantIV
)

// ParseQuadrant accepts roman (I..IV) or arabic (1..4) quadrant names.
// An empty name means QuadrantI.
func ParseQuadrant(name string) (Quadrant, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "I", "1":
		return QuadrantI, nil
	case "II", "2":
		return QuadrantII, nil
	case "III", "3":
		return QuadrantIII, nil
	case "IV", "4":
		return QuadrantIV, nil
	}
	return 0, fmt.Errorf("unknown quadrant %q", name)
}

func (q Quadrant) signs() (sx, sy float64, ok bool) {
	switch q {
	case QuadrantI:
		return 1, 1, true
	case QuadrantII:
		return -1, 1, true
	case QuadrantIII:
		return -1, -1, true
	case QuadrantIV:
		return 1, -1, true
	}
	return 0, 0, false
}
