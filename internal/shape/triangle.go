package shape

import (
	"go-drawing-shapes/internal/config"
	"go-drawing-shapes/pkg/render"
)

// Triangle is a filled triangle. X and Y are its first vertex; it has no
// width or height.
type Triangle struct {
	base
	x2, y2 float64
	x3, y3 float64
}

// NewTriangle creates a triangle on surface. Without WithVertices it is the
// small triangle (0,0) (20,0) (20,20). WithPosition moves the first vertex.
func NewTriangle(surface render.Surface, opts ...Option) (*Triangle, error) {
	o := applyOptions(opts)
	b, err := newBase(KindTriangle, surface, o)
	if err != nil {
		return nil, err
	}

	v := [6]float64{
		config.DefaultTriangleX1, config.DefaultTriangleY1,
		config.DefaultTriangleX2, config.DefaultTriangleY2,
		config.DefaultTriangleX3, config.DefaultTriangleY3,
	}
	if o.vertices != nil {
		v = *o.vertices
	}
	t := &Triangle{base: b, x2: v[2], y2: v[3], x3: v[4], y3: v[5]}
	t.x, t.y = v[0], v[1]
	if o.x != nil {
		t.x = *o.x
	}
	if o.y != nil {
		t.y = *o.y
	}
	return t, nil
}

// SetWidth is not defined for triangles.
func (t *Triangle) SetWidth(float64) error {
	return t.unsupported("Width")
}

// SetHeight is not defined for triangles.
func (t *Triangle) SetHeight(float64) error {
	return t.unsupported("Height")
}

// SetVertices replaces all three vertices.
func (t *Triangle) SetVertices(x1, y1, x2, y2, x3, y3 float64) {
	t.x, t.y = x1, y1
	t.x2, t.y2 = x2, y2
	t.x3, t.y3 = x3, y3
}

// Vertices returns the three vertices in order.
func (t *Triangle) Vertices() []render.Point {
	return []render.Point{{X: t.x, Y: t.y}, {X: t.x2, Y: t.y2}, {X: t.x3, Y: t.y3}}
}

// Location returns x1, y1, x2, y2, x3, y3.
func (t *Triangle) Location() []float64 {
	return []float64{t.x, t.y, t.x2, t.y2, t.x3, t.y3}
}

// Randomize places every vertex anywhere on the surface, independently.
// Vertices are not kept apart, so the triangle may be degenerate.
func (t *Triangle) Randomize(rng Random) {
	w, h := t.surface.Width(), t.surface.Height()
	t.x = float64(rng.UniformInt(0, w))
	t.y = float64(rng.UniformInt(0, h))
	t.x2 = float64(rng.UniformInt(0, w))
	t.y2 = float64(rng.UniformInt(0, h))
	t.x3 = float64(rng.UniformInt(0, w))
	t.y3 = float64(rng.UniformInt(0, h))
	t.color = t.randomColor(rng)
}

// Draw fills the triangle on the surface.
func (t *Triangle) Draw() {
	t.surface.DrawPolygon(t.Vertices(), t.color)
}
