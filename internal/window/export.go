package window

import (
	"context"
	"fmt"
	"os"

	"go-drawing-shapes/internal/config"
	"go-drawing-shapes/pkg/render"
)

// exportWindow renders the canvas once to a file; its event loop ends
// as soon as the file is written.
type exportWindow struct {
	format string
	opts   Options
}

func newExportWindow(format string, opts Options) *exportWindow {
	if opts.Output == "" {
		opts.Output = "shapes." + format
	}
	return &exportWindow{format: format, opts: opts}
}

func (w *exportWindow) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(w.opts.Output)
	if err != nil {
		return fmt.Errorf("create %s: %w", w.opts.Output, err)
	}

	switch w.format {
	case config.BackendSVG:
		err = render.NewVectorRenderer(w.opts.Logger).WriteSVG(w.opts.Canvas, f)
	default:
		err = render.NewRasterRenderer(w.opts.Logger).WritePNG(w.opts.Canvas, f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", w.opts.Output, err)
	}

	w.opts.Logger.WithField("path", w.opts.Output).WithField("items", w.opts.Canvas.Len()).Info("canvas exported")
	return nil
}
