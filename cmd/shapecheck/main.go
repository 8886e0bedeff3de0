// Command shapecheck prints the area and centroid of a single shape.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"figcentroid/internal/element"
	"figcentroid/internal/shape"
	"figcentroid/pkg/geometry"
)

func main() {
	kind := flag.String("kind", "", "Shape: rectangle, circle, semicircle, triangle, quad")
	width := flag.Float64("width", 0, "Rectangle width")
	height := flag.Float64("height", 0, "Rectangle height")
	radius := flag.Float64("radius", 0, "Circle or semicircle radius")
	center := flag.String("center", "0,0", "Center as x,y")
	orient := flag.String("orientation", "up", "Semicircle orientation: up, down, left or right")
	vertices := flag.String("vertices", "", "Vertices as x1,y1,x2,y2,... (triangle: 3, quad: 4)")
	subtract := flag.Bool("subtract", false, "Treat the shape as a hole")
	flag.Parse()

	if *kind == "" {
		fmt.Println("Usage: shapecheck -kind <shape> [-width W -height H] [-radius R] [-center x,y] [-orientation up] [-vertices x1,y1,...] [-subtract]")
		os.Exit(1)
	}

	c, err := parsePoints(*center)
	if err != nil || len(c) != 1 {
		fmt.Fprintf(os.Stderr, "Invalid center %q\n", *center)
		os.Exit(1)
	}
	sign := element.SignOf(*subtract)

	var e element.Element
	switch *kind {
	case "rectangle":
		e = shape.Rectangle(*kind, *width, *height, c[0], sign)
	case "circle":
		e = shape.Circle(*kind, *radius, c[0], sign)
	case "semicircle":
		o, err := shape.ParseOrientation(*orient)
		if err == nil {
			e, err = shape.Semicircle(*kind, *radius, c[0], o, sign)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Semicircle failed: %v\n", err)
			os.Exit(1)
		}
	case "triangle", "quad":
		want := 3
		if *kind == "quad" {
			want = 4
		}
		v, err := parsePoints(*vertices)
		if err != nil || len(v) != want {
			fmt.Fprintf(os.Stderr, "%s needs %d vertices\n", *kind, want)
			os.Exit(1)
		}
		if want == 3 {
			e = shape.Triangle(*kind, v[0], v[1], v[2], sign)
		} else {
			if !geometry.IsSimpleQuad(v[0], v[1], v[2], v[3]) {
				fmt.Fprintln(os.Stderr, "Warning: vertices are not in winding order")
			}
			e = shape.RectangleByVertices(*kind, v[0], v[1], v[2], v[3], sign)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown shape %q\n", *kind)
		os.Exit(1)
	}

	fmt.Printf("%-12s %12s %12s %12s\n", "Shape", "Area", "Cx", "Cy")
	fmt.Printf("%-12s %12.4f %12.4f %12.4f\n", e.Name, e.SignedArea(), e.Centroid.X, e.Centroid.Y)
}

// parsePoints reads a flat comma-separated list of coordinates.
func parsePoints(s string) ([]geometry.Point2D, error) {
	fields := strings.Split(s, ",")
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinates")
	}
	pts := make([]geometry.Point2D, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(fields[i+1]), 64)
		if err != nil {
			return nil, err
		}
		pts = append(pts, geometry.NewPoint2D(x, y))
	}
	return pts, nil
}
