package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figcentroid/internal/calculator"
	"figcentroid/internal/element"
	"figcentroid/pkg/geometry"
)

func twoSquares() *calculator.Calculator {
	calc := calculator.New()
	calc.AddRectangle("left", 1, 1, geometry.NewPoint2D(0, 0), element.Additive)
	calc.AddRectangle("right", 1, 1, geometry.NewPoint2D(2, 0), element.Additive)
	return calc
}

func TestSummaryEmpty(t *testing.T) {
	out, err := Summary(calculator.New(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, EmptyMessage, out)
}

func TestSummaryLayout(t *testing.T) {
	out, err := Summary(twoSquares(), DefaultOptions())
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 8)

	assert.True(t, strings.HasPrefix(lines[0], "ELEMENT         AREA       Cx       Cy       A*Cx         A*Cy"))
	assert.Equal(t, strings.Repeat("-", 70), lines[1])
	assert.Equal(t, "left            1.00       0.00     0.00     0.00         0.00        ", lines[2])
	assert.Equal(t, "right           1.00       2.00     0.00     2.00         0.00        ", lines[3])
	assert.Equal(t, lines[1], lines[4])
	assert.Equal(t, "TOTAL           2.00                         2.00         0.00        ", lines[5])
	assert.Empty(t, lines[6])
	assert.Equal(t, "CENTROID: X = 1.00, Y = 0.00", lines[7])
}

func TestSummarySubtractiveRowIsNegative(t *testing.T) {
	calc := calculator.New()
	calc.AddRectangle("plate", 4, 4, geometry.NewPoint2D(0, 0), element.Additive)
	calc.AddRectangle("cut", 2, 2, geometry.NewPoint2D(1, 1), element.Subtractive)

	out, err := Summary(calc, Options{Precision: 3})
	require.NoError(t, err)
	assert.Contains(t, out, "cut             -4.000")
	assert.Contains(t, out, "CENTROID: X = -0.333, Y = -0.333")
}

func TestSummaryZeroArea(t *testing.T) {
	calc := calculator.New()
	calc.AddCircle("a", 1, geometry.Point2D{}, element.Additive)
	calc.AddCircle("b", 1, geometry.Point2D{}, element.Subtractive)

	_, err := Summary(calc, DefaultOptions())
	assert.ErrorIs(t, err, calculator.ErrZeroArea)
}

func TestSummaryStyledAddsExtent(t *testing.T) {
	out, err := Summary(twoSquares(), Options{Precision: 1, Styled: true})
	require.NoError(t, err)
	assert.Contains(t, out, "CENTROID: X = 1.0, Y = 0.0")
	assert.Contains(t, out, "EXTENT: X [0.0, 2.0]  Y [0.0, 0.0]")
}

func TestNegativePrecisionFallsBack(t *testing.T) {
	out, err := Summary(twoSquares(), Options{Precision: -1})
	require.NoError(t, err)
	assert.Contains(t, out, "CENTROID: X = 1.00, Y = 0.00")
}
