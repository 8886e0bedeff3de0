package geometry

import "math"

// SignedArea returns the shoelace area of a polygon in the supplied vertex
// order. Counter-clockwise polygons are positive, clockwise negative.
func SignedArea(polygon []Point2D) float64 {
	n := len(polygon)
	if n < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		prev := polygon[(i+n-1)%n]
		next := polygon[(i+1)%n]
		sum += polygon[i].X * (next.Y - prev.Y)
	}
	return sum / 2
}

// ShoelaceArea returns the unsigned shoelace area of a polygon.
// The vertices must be consistently wound; a self-intersecting order
// yields a wrong area without any error.
func ShoelaceArea(polygon []Point2D) float64 {
	return math.Abs(SignedArea(polygon))
}

// TriangleArea returns the area of the triangle abc using the determinant
// formula.
func TriangleArea(a, b, c Point2D) float64 {
	return math.Abs((a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y)) / 2)
}

// IsConvex returns true if the polygon vertices form a convex polygon.
// The polygon is assumed to be simple (non-self-intersecting).
func IsConvex(polygon []Point2D) bool {
	if len(polygon) < 3 {
		return false
	}

	n := len(polygon)
	var sign int

	for i := 0; i < n; i++ {
		cross := crossProduct(
			polygon[i],
			polygon[(i+1)%n],
			polygon[(i+2)%n],
		)

		if cross != 0 {
			currentSign := 1
			if cross < 0 {
				currentSign = -1
			}

			if sign == 0 {
				sign = currentSign
			} else if currentSign != sign {
				return false
			}
		}
	}

	return true
}

// IsSimpleQuad reports whether the quadrilateral abcd, taken in that
// order, has no crossing edges. Only the two pairs of opposite edges can
// cross in a quadrilateral.
func IsSimpleQuad(a, b, c, d Point2D) bool {
	return !segmentsCross(a, b, c, d) && !segmentsCross(b, c, d, a)
}

// segmentsCross reports whether segments p1-p2 and q1-q2 properly cross.
// Touching endpoints and collinear overlap do not count.
func segmentsCross(p1, p2, q1, q2 Point2D) bool {
	d1 := crossProduct(q1, q2, p1)
	d2 := crossProduct(q1, q2, p2)
	d3 := crossProduct(p1, p2, q1)
	d4 := crossProduct(p1, p2, q2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// crossProduct computes the cross product of vectors OA and OB.
func crossProduct(o, a, b Point2D) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
