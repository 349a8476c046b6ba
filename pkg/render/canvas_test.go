package render

import (
	"testing"

	"go-drawing-shapes/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasRetainsItems(t *testing.T) {
	d := event.NewDispatcher()
	var issued []Command
	d.Subscribe(event.CommandIssued, event.ListenerFunc(func(e event.Event) {
		issued = append(issued, e.Data.(Command))
	}))

	c := NewCanvas("Drawing shapes", 600, 600, d)
	c.DrawRectangle(110, 20, 200, 60, "yellow")
	c.DrawEllipse(275, 275, 325, 325, "black")
	c.DrawPolygon([]Point{{0, 0}, {20, 0}, {20, 20}}, "red")

	require.Equal(t, 3, c.Len())
	assert.Equal(t, c.Commands(), issued)

	rect := c.Commands()[0]
	assert.Equal(t, RectangleCommand, rect.Kind)
	assert.Equal(t, []Point{{110, 20}, {200, 60}}, rect.Points)
	assert.Equal(t, "yellow", rect.Fill)
	assert.Equal(t, "black", rect.Outline)

	poly := c.Commands()[2]
	assert.Equal(t, PolygonCommand, poly.Kind)
	assert.Empty(t, poly.Outline)

	assert.Len(t, c.Since(1), 2)
	assert.Nil(t, c.Since(3))
}

func TestCanvasCopiesPolygonPoints(t *testing.T) {
	c := NewCanvas("", 10, 10, nil)
	pts := []Point{{1, 1}, {2, 2}, {3, 1}}
	c.DrawPolygon(pts, "blue")
	pts[0].X = 9
	assert.Equal(t, 1.0, c.Commands()[0].Points[0].X)
}

func TestCommandBounds(t *testing.T) {
	cmd := Command{Points: []Point{{20, 5}, {0, 30}, {10, 0}}}
	x1, y1, x2, y2 := cmd.Bounds()
	assert.Equal(t, []float64{0, 0, 20, 30}, []float64{x1, y1, x2, y2})
}

func TestEllipsePoints(t *testing.T) {
	pts := EllipsePoints(0, 0, 100, 50)
	require.NotEmpty(t, pts)
	for _, p := range pts {
		assert.InDelta(t, 50, p.X, 50.0001)
		assert.InDelta(t, 25, p.Y, 25.0001)
	}
	assert.Greater(t, SignedArea(pts), 0.0)
}
