package window

import (
	"context"
	"errors"
	"image/color"

	"go-drawing-shapes/internal/config"
	"go-drawing-shapes/internal/shape"
	"go-drawing-shapes/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type raylibWindow struct {
	opts    Options
	palette *render.Palette
}

func newRaylibWindow(opts Options) *raylibWindow {
	return &raylibWindow{opts: opts, palette: render.NewPalette(opts.Logger)}
}

func (w *raylibWindow) Run(ctx context.Context) error {
	c := w.opts.Canvas
	rl.InitWindow(int32(c.Width()), int32(c.Height()), c.Title())
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return &shape.InitializationError{What: "raylib window", Err: errors.New("window not ready")}
	}
	rl.SetTargetFPS(config.TargetFPS)
	w.opts.Logger.WithField("items", c.Len()).Info("window opened")

	bg := toRL(w.palette.BackgroundOf(c))
	for !rl.WindowShouldClose() && ctx.Err() == nil {
		if rl.IsKeyPressed(rl.KeyR) {
			redraw(&w.opts)
		}

		rl.BeginDrawing()
		rl.ClearBackground(bg)
		for _, cmd := range c.Commands() {
			w.drawCommand(cmd)
		}
		rl.EndDrawing()
	}
	w.opts.Logger.Info("window closed")
	return nil
}

func (w *raylibWindow) drawCommand(cmd render.Command) {
	fill := toRL(w.palette.Resolve(cmd.Fill))
	switch cmd.Kind {
	case render.RectangleCommand:
		x1, y1, x2, y2 := cmd.Bounds()
		rec := rl.NewRectangle(float32(x1), float32(y1), float32(x2-x1), float32(y2-y1))
		rl.DrawRectangleRec(rec, fill)
		if cmd.Outline != "" {
			rl.DrawRectangleLinesEx(rec, float32(config.OutlineWidth), toRL(w.palette.Resolve(cmd.Outline)))
		}
	case render.EllipseCommand:
		x1, y1, x2, y2 := cmd.Bounds()
		cx, cy := int32((x1+x2)/2), int32((y1+y2)/2)
		rx, ry := float32((x2-x1)/2), float32((y2-y1)/2)
		rl.DrawEllipse(cx, cy, rx, ry, fill)
		if cmd.Outline != "" {
			rl.DrawEllipseLines(cx, cy, rx, ry, toRL(w.palette.Resolve(cmd.Outline)))
		}
	case render.PolygonCommand:
		if len(cmd.Points) != 3 {
			return
		}
		pts := cmd.Points
		// raylib рисует треугольник только при обходе против часовой стрелки
		if render.SignedArea(pts) > 0 {
			pts = []render.Point{pts[0], pts[2], pts[1]}
		}
		rl.DrawTriangle(
			rl.NewVector2(float32(pts[0].X), float32(pts[0].Y)),
			rl.NewVector2(float32(pts[1].X), float32(pts[1].Y)),
			rl.NewVector2(float32(pts[2].X), float32(pts[2].Y)),
			fill,
		)
	}
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
