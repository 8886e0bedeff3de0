// Package report renders the tabular summary of a composite figure.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"figcentroid/internal/calculator"
	"figcentroid/internal/element"
	"figcentroid/pkg/colorutil"
	"figcentroid/pkg/geometry"
)

// DefaultPrecision is the number of decimals printed for every value.
const DefaultPrecision = 2

// EmptyMessage is printed for a figure with no elements.
const EmptyMessage = "No elements defined."

// Options control summary formatting.
type Options struct {
	Precision int
	// Styled enables terminal styling and an extent footer.
	Styled bool
}

// DefaultOptions returns plain output with two decimals.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision}
}

var (
	headerStyle      = lipgloss.NewStyle().Bold(true)
	additiveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorutil.Hex(colorutil.Additive)))
	subtractiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorutil.Hex(colorutil.Subtractive)))
	resultStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorutil.Hex(colorutil.Result)))
)

// Summary renders each element's signed area and first moments, the
// totals and the composite centroid. It fails with
// calculator.ErrZeroArea when the figure has no defined centroid.
func Summary(calc *calculator.Calculator, opts Options) (string, error) {
	if calc.Len() == 0 {
		return EmptyMessage, nil
	}

	centroid, err := calc.Centroid()
	if err != nil {
		return "", err
	}
	totals := calc.Totals()

	prec := opts.Precision
	if prec < 0 {
		prec = DefaultPrecision
	}

	header := fmt.Sprintf("%-15s %-10s %-8s %-8s %-12s %-12s", "ELEMENT", "AREA", "Cx", "Cy", "A*Cx", "A*Cy")
	separator := strings.Repeat("-", len(header))

	lines := make([]string, 0, calc.Len()+6)
	if opts.Styled {
		lines = append(lines, headerStyle.Render(header))
	} else {
		lines = append(lines, header)
	}
	lines = append(lines, separator)

	elems := calc.Elements()
	for _, e := range elems {
		line := fmt.Sprintf("%-15s %-10.*f %-8.*f %-8.*f %-12.*f %-12.*f",
			e.Name, prec, e.SignedArea(), prec, e.Centroid.X, prec, e.Centroid.Y,
			prec, e.MomentX(), prec, e.MomentY())
		if opts.Styled {
			if e.Sign == element.Subtractive {
				line = subtractiveStyle.Render(line)
			} else {
				line = additiveStyle.Render(line)
			}
		}
		lines = append(lines, line)
	}

	lines = append(lines, separator)
	lines = append(lines, fmt.Sprintf("%-15s %-10.*f %-8s %-8s %-12.*f %-12.*f",
		"TOTAL", prec, totals.Area, "", "", prec, totals.MomentX, prec, totals.MomentY))
	lines = append(lines, "")

	result := fmt.Sprintf("CENTROID: X = %.*f, Y = %.*f", prec, centroid.X, prec, centroid.Y)
	if opts.Styled {
		lines = append(lines, resultStyle.Render(result))
		lines = append(lines, extent(elems, prec))
	} else {
		lines = append(lines, result)
	}

	return strings.Join(lines, "\n"), nil
}

// extent describes the bounding box of the element centroids.
func extent(elems []element.Element, prec int) string {
	pts := make([]geometry.Point2D, len(elems))
	for i, e := range elems {
		pts[i] = e.Centroid
	}
	box := geometry.BoundingBox(pts)
	hi := box.Max()
	return fmt.Sprintf("EXTENT: X [%.*f, %.*f]  Y [%.*f, %.*f]",
		prec, box.X, prec, hi.X, prec, box.Y, prec, hi.Y)
}
