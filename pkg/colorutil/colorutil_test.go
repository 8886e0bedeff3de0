package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "#add8e6", Hex(Additive))
	assert.Equal(t, "#f08080", Hex(Subtractive))
	assert.Equal(t, "#000000", Hex(color.Black))
	assert.Equal(t, "#ffffff", Hex(color.RGBA{R: 255, G: 255, B: 255, A: 255}))
}
