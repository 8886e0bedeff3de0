package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square(half float64) []Point2D {
	return []Point2D{
		{X: -half, Y: -half},
		{X: half, Y: -half},
		{X: half, Y: half},
		{X: -half, Y: half},
	}
}

func TestShoelaceArea(t *testing.T) {
	tests := []struct {
		name    string
		polygon []Point2D
		want    float64
	}{
		{"ccw square", square(40), 6400},
		{"cw square", []Point2D{{-40, -40}, {-40, 40}, {40, 40}, {40, -40}}, 6400},
		{"triangle", []Point2D{{0, 0}, {4, 0}, {0, 3}}, 6},
		{"degenerate", []Point2D{{0, 0}, {1, 1}}, 0},
		{"bowtie", []Point2D{{0, 0}, {2, 2}, {2, 0}, {0, 2}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ShoelaceArea(tt.polygon), 1e-9)
		})
	}
}

func TestSignedAreaWinding(t *testing.T) {
	ccw := square(1)
	assert.InDelta(t, 4, SignedArea(ccw), 1e-12)

	cw := []Point2D{ccw[3], ccw[2], ccw[1], ccw[0]}
	assert.InDelta(t, -4, SignedArea(cw), 1e-12)
}

func TestTriangleArea(t *testing.T) {
	assert.InDelta(t, 6, TriangleArea(Point2D{0, 0}, Point2D{4, 0}, Point2D{0, 3}), 1e-12)
	assert.InDelta(t, 6, TriangleArea(Point2D{0, 0}, Point2D{0, 3}, Point2D{4, 0}), 1e-12)
	assert.Zero(t, TriangleArea(Point2D{0, 0}, Point2D{1, 1}, Point2D{2, 2}))
}

func TestIsSimpleQuad(t *testing.T) {
	sq := square(1)
	assert.True(t, IsSimpleQuad(sq[0], sq[1], sq[2], sq[3]))
	assert.False(t, IsSimpleQuad(sq[0], sq[2], sq[1], sq[3]))
}

func TestIsConvex(t *testing.T) {
	assert.True(t, IsConvex(square(2)))
	dart := []Point2D{{0, 0}, {4, 0}, {1, 1}, {0, 4}}
	assert.False(t, IsConvex(dart))
	assert.False(t, IsConvex([]Point2D{{0, 0}, {1, 0}}))
}

func TestCentroidAndBoundingBox(t *testing.T) {
	pts := []Point2D{{0, 0}, {4, 0}, {0, 3}}
	c := Centroid(pts)
	assert.InDelta(t, 4.0/3.0, c.X, 1e-12)
	assert.InDelta(t, 1.0, c.Y, 1e-12)
	assert.Equal(t, Point2D{}, Centroid(nil))

	box := BoundingBox(pts)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 4, Height: 3}, box)
	assert.Equal(t, Point2D{X: 4, Y: 3}, box.Max())
	assert.True(t, box.Contains(Point2D{X: 2, Y: 1}))
	assert.Equal(t, Point2D{X: 2, Y: 1.5}, box.Center())
}

func TestPointOps(t *testing.T) {
	p := NewPoint2D(3, 4)
	assert.Equal(t, 5.0, p.Distance(Point2D{}))
	assert.Equal(t, Point2D{X: 4, Y: 6}, p.Add(Point2D{X: 1, Y: 2}))
	assert.Equal(t, Point2D{X: 2, Y: 2}, p.Sub(Point2D{X: 1, Y: 2}))
	assert.Equal(t, Point2D{X: 6, Y: 8}, p.Scale(2))
}
