// Package shape models drawable shapes bound to a shared drawing surface.
//
// Drawable is a closed sum type: *Rectangle, *Oval and *Triangle are its
// only variants. Rectangles and ovals are described by a bounding box,
// triangles by three vertices.
package shape

import (
	"errors"
	"fmt"

	"go-drawing-shapes/internal/config"
	"go-drawing-shapes/internal/event"
	"go-drawing-shapes/pkg/render"
)

// Kind identifies the variant of a Drawable.
type Kind int

const (
	KindRectangle Kind = iota
	KindOval
	KindTriangle
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "Rectangle"
	case KindOval:
		return "Oval"
	case KindTriangle:
		return "Triangle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Random is the source of randomness used by Randomize.
type Random interface {
	// UniformInt returns an integer in [low, high], inclusive.
	UniformInt(low, high int) int
	// Choice returns one of options.
	Choice(options []string) string
}

// Drawable is implemented by *Rectangle, *Oval and *Triangle.
type Drawable interface {
	Kind() Kind

	X() float64
	Y() float64
	Color() string
	SetX(x float64)
	SetY(y float64)
	SetColor(c string)

	// SetWidth and SetHeight return an *UnsupportedOperationError for
	// shapes without a width or height; the shape is left unchanged.
	SetWidth(w float64) error
	SetHeight(h float64) error

	// Location returns x1, y1, x2, y2 for box shapes and the three
	// vertices for triangles.
	Location() []float64

	// Randomize picks new geometry and a color from the palette.
	Randomize(rng Random)

	// Draw issues exactly one draw command to the surface.
	Draw()

	drawable()
}

var errNoSurface = errors.New("no drawing surface")

// base holds the attributes every shape has.
type base struct {
	kind       Kind
	surface    render.Surface
	x, y       float64
	color      string
	palette    []string
	dispatcher *event.Dispatcher
}

func newBase(kind Kind, surface render.Surface, o *options) (base, error) {
	if c, ok := surface.(*render.Canvas); surface == nil || (ok && c == nil) {
		return base{}, &InitializationError{What: kind.String(), Err: errNoSurface}
	}
	if surface.Width() <= 0 || surface.Height() <= 0 {
		return base{}, &InitializationError{
			What: kind.String(),
			Err:  fmt.Errorf("surface is %dx%d", surface.Width(), surface.Height()),
		}
	}
	return base{
		kind:       kind,
		surface:    surface,
		color:      o.color,
		palette:    o.palette,
		dispatcher: o.dispatcher,
	}, nil
}

func (b *base) Kind() Kind        { return b.kind }
func (b *base) X() float64        { return b.x }
func (b *base) Y() float64        { return b.y }
func (b *base) Color() string     { return b.color }
func (b *base) SetX(x float64)    { b.x = x }
func (b *base) SetY(y float64)    { b.y = y }
func (b *base) SetColor(c string) { b.color = c }
func (b *base) drawable()         {}

// Surface returns the surface the shape draws on.
func (b *base) Surface() render.Surface { return b.surface }

func (b *base) randomColor(rng Random) string {
	return rng.Choice(b.palette)
}

// unsupported reports op as a diagnostic and returns the matching error.
func (b *base) unsupported(op string) error {
	err := &UnsupportedOperationError{Kind: b.kind, Operation: op}
	Logger().WithField("shape", b.kind.String()).Warn(err.Error())
	b.dispatcher.Dispatch(event.Event{Type: event.UnsupportedOperation, Data: err})
	return err
}

type options struct {
	width, height float64
	x, y          *float64
	color         string
	vertices      *[6]float64
	palette       []string
	dispatcher    *event.Dispatcher
}

// Option configures a shape at construction.
type Option func(*options)

func defaultOptions() options {
	return options{
		width:   config.DefaultShapeSize,
		height:  config.DefaultShapeSize,
		color:   config.DefaultColor,
		palette: config.Palette,
	}
}

// WithSize sets the width and height of a box shape. Triangles ignore it.
func WithSize(width, height float64) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithPosition sets the top-left corner of a box shape, or the first vertex
// of a triangle. Box shapes without a position are centered on the surface.
func WithPosition(x, y float64) Option {
	return func(o *options) {
		o.x, o.y = &x, &y
	}
}

// WithColor sets the fill color.
func WithColor(c string) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithVertices sets the three vertices of a triangle. Box shapes ignore it.
func WithVertices(x1, y1, x2, y2, x3, y3 float64) Option {
	return func(o *options) {
		o.vertices = &[6]float64{x1, y1, x2, y2, x3, y3}
	}
}

// WithPalette sets the colors Randomize picks from.
func WithPalette(palette []string) Option {
	return func(o *options) {
		if len(palette) > 0 {
			o.palette = palette
		}
	}
}

// WithDispatcher sets where UnsupportedOperation events are published.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(o *options) {
		o.dispatcher = d
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &o
}

var (
	_ Drawable = (*Rectangle)(nil)
	_ Drawable = (*Oval)(nil)
	_ Drawable = (*Triangle)(nil)
)

// New creates a shape of the given kind.
func New(kind Kind, surface render.Surface, opts ...Option) (Drawable, error) {
	var (
		d   Drawable
		err error
	)
	switch kind {
	case KindRectangle:
		var r *Rectangle
		r, err = NewRectangle(surface, opts...)
		d = r
	case KindOval:
		var o *Oval
		o, err = NewOval(surface, opts...)
		d = o
	case KindTriangle:
		var t *Triangle
		t, err = NewTriangle(surface, opts...)
		d = t
	default:
		err = &InitializationError{What: kind.String(), Err: errors.New("unknown shape kind")}
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}
