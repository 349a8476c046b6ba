package shape

import (
	"fmt"

	"go-drawing-shapes/internal/config"
	"go-drawing-shapes/pkg/render"
)

// box is a shape described by its bounding box.
type box struct {
	base
	width, height float64
}

func newBox(o *options, b base) box {
	bx := box{base: b, width: o.width, height: o.height}
	// Без координат фигура ставится в центр холста
	if o.x != nil {
		bx.x = *o.x
	} else {
		bx.x = (float64(b.surface.Width()) - bx.width) / 2
	}
	if o.y != nil {
		bx.y = *o.y
	} else {
		bx.y = (float64(b.surface.Height()) - bx.height) / 2
	}
	return bx
}

func (b *box) Width() float64  { return b.width }
func (b *box) Height() float64 { return b.height }

func (b *box) SetWidth(w float64) error {
	b.width = w
	return nil
}

func (b *box) SetHeight(h float64) error {
	b.height = h
	return nil
}

// Location returns the bounding box as x1, y1, x2, y2.
func (b *box) Location() []float64 {
	return []float64{b.x, b.y, b.x + b.width, b.y + b.height}
}

// Randomize is RandomizeWithin with the default size bounds.
func (b *box) Randomize(rng Random) {
	if err := b.RandomizeWithin(rng, config.MinRandomSize, config.MaxRandomSize); err != nil {
		Logger().WithError(err).WithField("shape", b.kind.String()).Warn("randomize skipped")
	}
}

// RandomizeWithin draws width and height independently from
// [minSize, maxSize], then a position that keeps the whole shape on the
// surface, then a color from the palette. maxSize is capped per axis to the
// surface extent. On error the shape is left unchanged.
func (b *box) RandomizeWithin(rng Random, minSize, maxSize int) error {
	sw, sh := b.surface.Width(), b.surface.Height()
	maxW, maxH := min(maxSize, sw), min(maxSize, sh)
	if minSize < 0 || minSize > maxSize || minSize > maxW || minSize > maxH {
		return fmt.Errorf("%w: size [%d, %d] on a %dx%d surface", ErrInvalidBounds, minSize, maxSize, sw, sh)
	}

	w := rng.UniformInt(minSize, maxW)
	h := rng.UniformInt(minSize, maxH)
	b.width, b.height = float64(w), float64(h)
	b.x = float64(rng.UniformInt(0, sw-w))
	b.y = float64(rng.UniformInt(0, sh-h))
	b.color = b.randomColor(rng)
	return nil
}

// Rectangle is a filled axis-aligned rectangle.
type Rectangle struct {
	box
}

// NewRectangle creates a rectangle on surface. The default is a 50x50
// black square centered on the surface.
func NewRectangle(surface render.Surface, opts ...Option) (*Rectangle, error) {
	o := applyOptions(opts)
	b, err := newBase(KindRectangle, surface, o)
	if err != nil {
		return nil, err
	}
	return &Rectangle{box: newBox(o, b)}, nil
}

// Draw fills the bounding box on the surface.
func (r *Rectangle) Draw() {
	r.surface.DrawRectangle(r.x, r.y, r.x+r.width, r.y+r.height, r.color)
}

// Oval is a filled ellipse inscribed in its bounding box.
type Oval struct {
	box
}

// NewOval creates an oval on surface. The default is a 50x50 black circle
// centered on the surface.
func NewOval(surface render.Surface, opts ...Option) (*Oval, error) {
	o := applyOptions(opts)
	b, err := newBase(KindOval, surface, o)
	if err != nil {
		return nil, err
	}
	return &Oval{box: newBox(o, b)}, nil
}

// Draw fills the ellipse inscribed in the bounding box.
func (o *Oval) Draw() {
	o.surface.DrawEllipse(o.x, o.y, o.x+o.width, o.y+o.height, o.color)
}
