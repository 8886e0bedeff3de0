// Package colorutil provides shared color utilities for report styling.
package colorutil

import (
	"fmt"
	"image/color"
)

// Palette colors for additive and subtractive contributions.
var (
	Additive    = color.RGBA{R: 173, G: 216, B: 230, A: 255} // light blue
	Subtractive = color.RGBA{R: 240, G: 128, B: 128, A: 255} // light coral
	Result      = color.RGBA{R: 0, G: 200, B: 0, A: 255}
)

// Hex returns the color as #rrggbb, ignoring alpha.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
