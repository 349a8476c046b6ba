package window

import (
	"context"

	"go-drawing-shapes/internal/config"
	"go-drawing-shapes/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type ebitenWindow struct {
	opts Options
}

func newEbitenWindow(opts Options) *ebitenWindow {
	return &ebitenWindow{opts: opts}
}

// ebitenGame implements ebiten.Game around a canvas.
type ebitenGame struct {
	ctx      context.Context
	opts     *Options
	renderer *render.CanvasRenderer
}

func (g *ebitenGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		redraw(g.opts)
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Canvas.Width(), g.opts.Canvas.Height()
}

func (w *ebitenWindow) Run(ctx context.Context) error {
	c := w.opts.Canvas
	ebiten.SetWindowSize(c.Width(), c.Height())
	ebiten.SetWindowTitle(c.Title())
	ebiten.SetTPS(config.TargetFPS)

	game := &ebitenGame{
		ctx:      ctx,
		opts:     &w.opts,
		renderer: render.NewCanvasRenderer(c, w.opts.Dispatcher, w.opts.Logger),
	}
	w.opts.Logger.WithField("items", c.Len()).Info("window opened")
	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	w.opts.Logger.Info("window closed")
	return nil
}
