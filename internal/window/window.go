// Package window runs the event loop that shows a canvas: an interactive
// window (ebiten or raylib) or a headless export to a file.
package window

import (
	"context"
	"errors"
	"fmt"

	"go-drawing-shapes/internal/config"
	"go-drawing-shapes/internal/event"
	"go-drawing-shapes/pkg/render"

	"github.com/sirupsen/logrus"
)

// ErrUnknownBackend is returned by New for an unrecognised backend name.
var ErrUnknownBackend = errors.New("unknown backend")

// Window shows a canvas until it is closed or ctx is cancelled.
type Window interface {
	Run(ctx context.Context) error
}

// Options are shared by every backend.
type Options struct {
	Canvas     *render.Canvas
	Dispatcher *event.Dispatcher
	Logger     logrus.FieldLogger
	// Output is the file written by headless backends.
	Output string
	// OnRedraw is called when the user asks for a new scene (key R).
	OnRedraw func()
}

// Backends lists the names New accepts.
func Backends() []string {
	return []string{config.BackendEbiten, config.BackendRaylib, config.BackendPNG, config.BackendSVG}
}

// New returns the window for backend.
func New(backend string, opts Options) (Window, error) {
	if opts.Canvas == nil {
		return nil, errors.New("window: nil canvas")
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		opts.Logger = l
	}
	opts.Logger = opts.Logger.WithField("backend", backend)

	switch backend {
	case config.BackendEbiten:
		return newEbitenWindow(opts), nil
	case config.BackendRaylib:
		return newRaylibWindow(opts), nil
	case config.BackendPNG, config.BackendSVG:
		return newExportWindow(backend, opts), nil
	}
	return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownBackend, backend, Backends())
}

// redraw runs the redraw hook and announces it.
func redraw(opts *Options) {
	if opts.OnRedraw == nil {
		return
	}
	opts.OnRedraw()
	opts.Dispatcher.Dispatch(event.Event{Type: event.SceneRedrawn, Data: opts.Canvas.Len()})
}
