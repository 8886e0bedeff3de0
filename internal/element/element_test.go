package element

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"figcentroid/pkg/geometry"
)

func TestSignedAreaAndMoments(t *testing.T) {
	c := geometry.NewPoint2D(2, -3)

	add := New("a", 10, c, Additive)
	assert.Equal(t, 10.0, add.SignedArea())
	assert.Equal(t, 20.0, add.MomentX())
	assert.Equal(t, -30.0, add.MomentY())

	sub := New("b", 10, c, Subtractive)
	assert.Equal(t, -10.0, sub.SignedArea())
	assert.Equal(t, -20.0, sub.MomentX())
	assert.Equal(t, 30.0, sub.MomentY())
}

func TestSignOf(t *testing.T) {
	assert.Equal(t, Additive, SignOf(false))
	assert.Equal(t, Subtractive, SignOf(true))
	assert.Equal(t, "+", Additive.String())
	assert.Equal(t, "-", Subtractive.String())
}

func TestZeroValueIsAdditive(t *testing.T) {
	var e Element
	e.Area = 3
	assert.Equal(t, 3.0, e.SignedArea())
}

func TestString(t *testing.T) {
	e := New("hole", 4, geometry.NewPoint2D(1, 2), Subtractive)
	assert.Equal(t, "hole(-4 @ 1,2)", e.String())
}
