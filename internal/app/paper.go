// internal/app/paper.go
package app

import (
	"context"
	"fmt"

	"go-drawing-shapes/internal/config"
	"go-drawing-shapes/internal/event"
	"go-drawing-shapes/internal/shape"
	"go-drawing-shapes/internal/utils"
	"go-drawing-shapes/internal/window"
	"go-drawing-shapes/pkg/render"

	"github.com/sirupsen/logrus"
)

// Paper is the window the shapes are drawn on: one shared canvas, the
// backend that shows it and the shapes placed so far.
type Paper struct {
	Canvas          *render.Canvas
	Window          window.Window
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Logger          logrus.FieldLogger

	cfg    *config.Config
	shapes []shape.Drawable
}

// NewPaper creates the canvas and the configured backend. Any failure is
// returned as a *shape.InitializationError.
func NewPaper(cfg *config.Config, dispatcher *event.Dispatcher, logger logrus.FieldLogger) (*Paper, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, &shape.InitializationError{
			What: "Paper",
			Err:  fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height),
		}
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}

	canvas := render.NewCanvas(cfg.Title, cfg.Width, cfg.Height, dispatcher)
	canvas.SetBackground(cfg.Background)

	p := &Paper{
		Canvas:          canvas,
		EventDispatcher: dispatcher,
		Rng:             utils.NewPRNGService(cfg.Seed),
		Logger:          logger,
		cfg:             cfg,
	}

	w, err := window.New(cfg.Backend, window.Options{
		Canvas:     canvas,
		Dispatcher: dispatcher,
		Logger:     logger,
		Output:     cfg.Output,
		OnRedraw:   p.RandomizeAll,
	})
	if err != nil {
		return nil, &shape.InitializationError{What: "Paper", Err: err}
	}
	p.Window = w

	listener := &PaperEventListener{logger: logger}
	dispatcher.SubscribeAll(listener)
	return p, nil
}

// Run shows the paper until the window is closed or ctx is cancelled.
func (p *Paper) Run(ctx context.Context) error {
	return p.Window.Run(ctx)
}

// Options returns the shape options every shape on this paper shares.
func (p *Paper) Options() []shape.Option {
	return []shape.Option{
		shape.WithPalette(p.cfg.Palette),
		shape.WithDispatcher(p.EventDispatcher),
	}
}

// Add creates a shape of kind on the canvas and keeps it for RandomizeAll.
func (p *Paper) Add(kind shape.Kind, opts ...shape.Option) (shape.Drawable, error) {
	d, err := shape.New(kind, p.Canvas, append(p.Options(), opts...)...)
	if err != nil {
		return nil, err
	}
	p.shapes = append(p.shapes, d)
	return d, nil
}

// Shapes returns the shapes added so far.
func (p *Paper) Shapes() []shape.Drawable {
	return p.shapes
}

// Randomize randomizes d using the configured size bounds.
func (p *Paper) Randomize(d shape.Drawable) {
	if bx, ok := d.(interface {
		RandomizeWithin(shape.Random, int, int) error
	}); ok {
		if err := bx.RandomizeWithin(p.Rng, p.cfg.MinSize, p.cfg.MaxSize); err != nil {
			p.Logger.WithError(err).WithField("shape", d.Kind().String()).Warn("randomize skipped")
		}
		return
	}
	d.Randomize(p.Rng)
}

// RandomizeAll gives every shape new random attributes and draws it again
// on top of what is already there.
func (p *Paper) RandomizeAll() {
	for _, d := range p.shapes {
		p.Randomize(d)
		d.Draw()
	}
}

// PaperEventListener logs canvas and shape events.
type PaperEventListener struct {
	logger logrus.FieldLogger
}

// OnEvent реализует интерфейс event.Listener.
func (l *PaperEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.CommandIssued:
		if cmd, ok := e.Data.(render.Command); ok {
			l.logger.WithFields(logrus.Fields{
				"kind": cmd.Kind.String(),
				"fill": cmd.Fill,
			}).Debug("draw command issued")
		}
	case event.UnsupportedOperation:
		if err, ok := e.Data.(error); ok {
			l.logger.WithError(err).Debug("unsupported operation ignored")
		}
	case event.SceneRedrawn:
		l.logger.WithField("items", e.Data).Info("scene redrawn")
	}
}
