package render

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/sirupsen/logrus"

	"go-drawing-shapes/internal/config"
)

// RasterRenderer replays a canvas into a gg software context.
type RasterRenderer struct {
	palette *Palette
	logger  logrus.FieldLogger
}

// NewRasterRenderer creates a renderer. logger may be nil.
func NewRasterRenderer(logger logrus.FieldLogger) *RasterRenderer {
	p := NewPalette(logger)
	return &RasterRenderer{palette: p, logger: p.logger}
}

// Rasterize draws every canvas item and returns the context; the caller
// closes it.
func (r *RasterRenderer) Rasterize(c *Canvas) (*gg.Context, error) {
	dc := gg.NewContext(c.Width(), c.Height())
	bg := r.palette.BackgroundOf(c)
	dc.ClearWithColor(gg.RGBA{
		R: float64(bg.R) / 255,
		G: float64(bg.G) / 255,
		B: float64(bg.B) / 255,
		A: float64(bg.A) / 255,
	})

	for i, cmd := range c.Commands() {
		if err := r.draw(dc, cmd); err != nil {
			dc.Close()
			return nil, fmt.Errorf("rasterize item %d (%s): %w", i, cmd.Kind, err)
		}
	}
	return dc, nil
}

// Image rasterizes the canvas into an image.
func (r *RasterRenderer) Image(c *Canvas) (image.Image, error) {
	dc, err := r.Rasterize(c)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG rasterizes the canvas and encodes it as PNG to w.
func (r *RasterRenderer) WritePNG(c *Canvas, w io.Writer) error {
	dc, err := r.Rasterize(c)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	r.logger.WithField("items", c.Len()).Debug("canvas encoded as png")
	return nil
}

func (r *RasterRenderer) draw(dc *gg.Context, cmd Command) error {
	r.path(dc, cmd)
	dc.SetColor(r.palette.Resolve(cmd.Fill))
	if cmd.Outline == "" {
		return dc.Fill()
	}
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetColor(r.palette.Resolve(cmd.Outline))
	dc.SetLineWidth(config.OutlineWidth)
	return dc.Stroke()
}

func (r *RasterRenderer) path(dc *gg.Context, cmd Command) {
	switch cmd.Kind {
	case RectangleCommand:
		x1, y1, x2, y2 := cmd.Bounds()
		dc.DrawRectangle(x1, y1, x2-x1, y2-y1)
	case EllipseCommand:
		x1, y1, x2, y2 := cmd.Bounds()
		dc.DrawEllipse((x1+x2)/2, (y1+y2)/2, (x2-x1)/2, (y2-y1)/2)
	case PolygonCommand:
		for i, p := range cmd.Points {
			if i == 0 {
				dc.MoveTo(p.X, p.Y)
			} else {
				dc.LineTo(p.X, p.Y)
			}
		}
		dc.ClosePath()
	}
}
