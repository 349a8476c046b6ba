package render

import (
	"math"

	"go-drawing-shapes/internal/config"
)

// EllipsePoints approximates the ellipse inscribed in the box (x1,y1)-(x2,y2)
// with a closed polygon of config.EllipseSegments vertices.
func EllipsePoints(x1, y1, x2, y2 float64) []Point {
	cx, cy := (x1+x2)/2, (y1+y2)/2
	rx, ry := math.Abs(x2-x1)/2, math.Abs(y2-y1)/2

	pts := make([]Point, config.EllipseSegments)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / float64(config.EllipseSegments)
		pts[i] = Point{
			X: cx + rx*math.Cos(angle),
			Y: cy + ry*math.Sin(angle),
		}
	}
	return pts
}

// SignedArea returns twice the signed area of the polygon. Positive means
// the vertices run clockwise in screen coordinates (y down).
func SignedArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a
}
