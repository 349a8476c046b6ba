package render

// Point is a coordinate pair on a surface, in pixels.
type Point struct {
	X, Y float64
}

// Surface is a fixed-size drawing area that accepts filled primitives.
// Coordinates of rectangles and ellipses are given as a bounding box,
// fill is a color name or a #rrggbb string.
type Surface interface {
	Width() int
	Height() int
	DrawRectangle(x1, y1, x2, y2 float64, fill string)
	DrawEllipse(x1, y1, x2, y2 float64, fill string)
	DrawPolygon(points []Point, fill string)
}
