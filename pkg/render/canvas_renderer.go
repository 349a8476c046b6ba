package render

import (
	"image/color"

	"go-drawing-shapes/internal/config"
	"go-drawing-shapes/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
)

// CanvasRenderer replays a Canvas onto ebiten images. Items are rendered
// once into an offscreen image; only items added since the last frame are
// drawn on top of it.
type CanvasRenderer struct {
	canvas    *Canvas
	palette   *Palette
	logger    logrus.FieldLogger
	fillImg   *ebiten.Image
	fillVs    []ebiten.Vertex
	fillIs    []uint16
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16
	image     *ebiten.Image // Предрендеренный холст
	rendered  int
	pending   int
	resetNext bool
}

// NewCanvasRenderer creates a renderer and subscribes it to canvas events
// on dispatcher (which may be nil).
func NewCanvasRenderer(canvas *Canvas, dispatcher *event.Dispatcher, logger logrus.FieldLogger) *CanvasRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	p := NewPalette(logger)
	r := &CanvasRenderer{
		canvas:    canvas,
		palette:   p,
		logger:    p.logger,
		fillImg:   fillImg,
		fillVs:    make([]ebiten.Vertex, 0, 4*config.EllipseSegments),
		fillIs:    make([]uint16, 0, 6*config.EllipseSegments),
		strokeVs:  make([]ebiten.Vertex, 0, 8*config.EllipseSegments),
		strokeIs:  make([]uint16, 0, 12*config.EllipseSegments),
		image:     ebiten.NewImage(canvas.Width(), canvas.Height()),
		pending:   canvas.Len(),
		resetNext: true,
	}
	if dispatcher != nil {
		dispatcher.Subscribe(event.CommandIssued, r)
	}
	return r
}

// OnEvent реализует интерфейс event.Listener.
func (r *CanvasRenderer) OnEvent(e event.Event) {
	if e.Type == event.CommandIssued {
		r.pending++
	}
}

// Draw renders pending items into the cached image and copies it to screen.
func (r *CanvasRenderer) Draw(screen *ebiten.Image) {
	if r.resetNext {
		r.image.Fill(r.palette.BackgroundOf(r.canvas))
		r.rendered = 0
		r.resetNext = false
	}
	if r.pending > 0 || r.rendered < r.canvas.Len() {
		items := r.canvas.Since(r.rendered)
		for _, cmd := range items {
			r.drawCommand(r.image, cmd)
		}
		r.rendered += len(items)
		r.pending = 0
		if len(items) > 0 {
			r.logger.WithField("items", len(items)).Debug("replayed canvas items")
		}
	}
	screen.DrawImage(r.image, nil)
}

func (r *CanvasRenderer) drawCommand(target *ebiten.Image, cmd Command) {
	fill := r.palette.Resolve(cmd.Fill)
	switch cmd.Kind {
	case RectangleCommand:
		x1, y1, x2, y2 := cmd.Bounds()
		vector.DrawFilledRect(target, float32(x1), float32(y1), float32(x2-x1), float32(y2-y1), fill, true)
		if cmd.Outline != "" {
			vector.StrokeRect(target, float32(x1), float32(y1), float32(x2-x1), float32(y2-y1),
				float32(config.OutlineWidth), r.palette.Resolve(cmd.Outline), true)
		}
	case EllipseCommand:
		x1, y1, x2, y2 := cmd.Bounds()
		path := polygonPath(EllipsePoints(x1, y1, x2, y2))
		r.fillPath(target, path, fill)
		if cmd.Outline != "" {
			r.strokePath(target, path, r.palette.Resolve(cmd.Outline))
		}
	case PolygonCommand:
		if len(cmd.Points) < 3 {
			return
		}
		r.fillPath(target, polygonPath(cmd.Points), fill)
	}
}

func polygonPath(pts []Point) *vector.Path {
	path := &vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()
	return path
}

func (r *CanvasRenderer) fillPath(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	tint(r.fillVs, c)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *CanvasRenderer) strokePath(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: float32(config.OutlineWidth),
	})
	tint(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func tint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
