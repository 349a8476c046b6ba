package window

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-drawing-shapes/internal/config"
	"go-drawing-shapes/internal/event"
	"go-drawing-shapes/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCanvas() *render.Canvas {
	c := render.NewCanvas(config.WindowTitle, 120, 80, nil)
	c.DrawRectangle(10, 10, 60, 40, "yellow")
	c.DrawPolygon([]render.Point{{X: 70, Y: 10}, {X: 110, Y: 10}, {X: 110, Y: 70}}, "red")
	return c
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New("tk", Options{Canvas: testCanvas()})
	assert.ErrorIs(t, err, ErrUnknownBackend)

	_, err = New(config.BackendPNG, Options{})
	assert.Error(t, err)
}

func TestExportBackends(t *testing.T) {
	dir := t.TempDir()
	for _, backend := range []string{config.BackendPNG, config.BackendSVG} {
		out := filepath.Join(dir, "out."+backend)
		w, err := New(backend, Options{Canvas: testCanvas(), Output: out})
		require.NoError(t, err)
		require.NoError(t, w.Run(context.Background()))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
		if backend == config.BackendSVG {
			assert.True(t, strings.Contains(string(data), "<polygon"))
		} else {
			assert.Equal(t, "\x89PNG", string(data[:4]))
		}
	}
}

func TestExportCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filepath.Join(t.TempDir(), "never.png")
	w, err := New(config.BackendPNG, Options{Canvas: testCanvas(), Output: out})
	require.NoError(t, err)
	assert.ErrorIs(t, w.Run(ctx), context.Canceled)
	assert.NoFileExists(t, out)
}

func TestRedrawAnnounces(t *testing.T) {
	d := event.NewDispatcher()
	var got []event.Event
	d.Subscribe(event.SceneRedrawn, event.ListenerFunc(func(e event.Event) { got = append(got, e) }))

	c := testCanvas()
	calls := 0
	opts := Options{Canvas: c, Dispatcher: d, OnRedraw: func() {
		calls++
		c.DrawEllipse(0, 0, 10, 10, "blue")
	}}
	redraw(&opts)

	assert.Equal(t, 1, calls)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Data)

	redraw(&Options{Canvas: c, Dispatcher: d})
	assert.Len(t, got, 1, "no hook, no event")
}
