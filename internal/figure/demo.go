package figure

import "figcentroid/pkg/geometry"

func p(x, y float64) geometry.Point2D { return geometry.NewPoint2D(x, y) }

// Demo returns the worked example: an 80x80 square centered on the origin
// with a rectangle and semicircle stacked above it, two circular holes and
// four triangular corner cuts.
func Demo() *File {
	f := New("demo")
	f.Description = "Square with stacked rectangle and semicircle, two holes, four corner cuts"
	f.Shapes = []Shape{
		{
			Name:     "C.1v_square",
			Kind:     KindRectangleVertices,
			Vertices: []geometry.Point2D{p(-40, -40), p(40, -40), p(40, 40), p(-40, 40)},
		},
		{
			Name:     "C2C1_rectangle",
			Kind:     KindRectangleVertices,
			Vertices: []geometry.Point2D{p(-40, 71.25), p(40, 71.25), p(40, 108.75), p(-40, 108.75)},
		},
		{
			Name:        "SEMICIRCLE",
			Kind:        KindSemicircle,
			Radius:      15,
			Center:      p(0, 138.41),
			Orientation: "up",
		},
		{Name: "CIR_MAJOR", Kind: KindCircle, Radius: 25, Center: p(0, 0), Subtract: true},
		{Name: "CIR_MINOR", Kind: KindCircle, Radius: 8, Center: p(0, 140), Subtract: true},
		{
			Name:     "T1w",
			Kind:     KindTriangle,
			Subtract: true,
			Vertices: []geometry.Point2D{p(-40, 40), p(-30, 40), p(-40, 30)},
		},
		{
			Name:     "T2z",
			Kind:     KindTriangle,
			Subtract: true,
			Vertices: []geometry.Point2D{p(40, 40), p(30, 40), p(40, 30)},
		},
		{
			Name:     "T3A1",
			Kind:     KindTriangle,
			Subtract: true,
			Vertices: []geometry.Point2D{p(-40, -40), p(-30, -40), p(-40, -30)},
		},
		{
			Name:     "T4B1",
			Kind:     KindTriangle,
			Subtract: true,
			Vertices: []geometry.Point2D{p(40, -40), p(30, -40), p(40, -30)},
		},
	}
	return f
}
