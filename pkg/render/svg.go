package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/sirupsen/logrus"

	"go-drawing-shapes/internal/config"
)

// VectorRenderer writes a canvas as an SVG document. svgo works in whole
// pixels, coordinates are rounded.
type VectorRenderer struct {
	palette *Palette
	logger  logrus.FieldLogger
}

// NewVectorRenderer creates a renderer. logger may be nil.
func NewVectorRenderer(logger logrus.FieldLogger) *VectorRenderer {
	p := NewPalette(logger)
	return &VectorRenderer{palette: p, logger: p.logger}
}

// WriteSVG emits one SVG element per canvas item, after a background rect.
func (r *VectorRenderer) WriteSVG(c *Canvas, w io.Writer) error {
	doc := svg.New(w)
	doc.Start(c.Width(), c.Height())
	doc.Title(c.Title())
	doc.Rect(0, 0, c.Width(), c.Height(), "fill:"+Hex(r.palette.BackgroundOf(c)))

	for _, cmd := range c.Commands() {
		style := r.style(cmd)
		switch cmd.Kind {
		case RectangleCommand:
			x1, y1, x2, y2 := cmd.Bounds()
			doc.Rect(round(x1), round(y1), round(x2-x1), round(y2-y1), style)
		case EllipseCommand:
			x1, y1, x2, y2 := cmd.Bounds()
			doc.Ellipse(round((x1+x2)/2), round((y1+y2)/2), round((x2-x1)/2), round((y2-y1)/2), style)
		case PolygonCommand:
			xs := make([]int, len(cmd.Points))
			ys := make([]int, len(cmd.Points))
			for i, p := range cmd.Points {
				xs[i], ys[i] = round(p.X), round(p.Y)
			}
			doc.Polygon(xs, ys, style)
		default:
			return fmt.Errorf("svg: unsupported item %s", cmd.Kind)
		}
	}
	doc.End()
	r.logger.WithField("items", c.Len()).Debug("canvas encoded as svg")
	return nil
}

func (r *VectorRenderer) style(cmd Command) string {
	style := "fill:" + Hex(r.palette.Resolve(cmd.Fill))
	if cmd.Outline != "" {
		style += fmt.Sprintf(";stroke:%s;stroke-width:%g", Hex(r.palette.Resolve(cmd.Outline)), config.OutlineWidth)
	}
	return style
}

func round(v float64) int {
	return int(math.Round(v))
}
