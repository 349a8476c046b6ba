package render

import (
	"go-drawing-shapes/internal/config"
	"go-drawing-shapes/internal/event"
)

// CommandKind identifies the primitive a Command draws.
type CommandKind int

const (
	RectangleCommand CommandKind = iota
	EllipseCommand
	PolygonCommand
)

func (k CommandKind) String() string {
	switch k {
	case RectangleCommand:
		return "rectangle"
	case EllipseCommand:
		return "ellipse"
	case PolygonCommand:
		return "polygon"
	}
	return "unknown"
}

// Command is one retained canvas item. Rectangles and ellipses keep their
// bounding box as Points[0] (top-left) and Points[1] (bottom-right).
type Command struct {
	Kind    CommandKind
	Points  []Point
	Fill    string
	Outline string
}

// Bounds returns the bounding box of the command's points.
func (c Command) Bounds() (x1, y1, x2, y2 float64) {
	if len(c.Points) == 0 {
		return 0, 0, 0, 0
	}
	x1, y1 = c.Points[0].X, c.Points[0].Y
	x2, y2 = x1, y1
	for _, p := range c.Points[1:] {
		x1 = min(x1, p.X)
		y1 = min(y1, p.Y)
		x2 = max(x2, p.X)
		y2 = max(y2, p.Y)
	}
	return x1, y1, x2, y2
}

// Canvas is a retained display list: every draw call appends an item that
// stays until the canvas is discarded. It implements Surface.
type Canvas struct {
	title      string
	width      int
	height     int
	background string
	commands   []Command
	dispatcher *event.Dispatcher
}

// NewCanvas creates an empty canvas. dispatcher may be nil.
func NewCanvas(title string, width, height int, dispatcher *event.Dispatcher) *Canvas {
	return &Canvas{
		title:      title,
		width:      width,
		height:     height,
		dispatcher: dispatcher,
	}
}

func (c *Canvas) Title() string { return c.title }
func (c *Canvas) Width() int    { return c.width }
func (c *Canvas) Height() int   { return c.height }

// Background returns the background color name; "" means the default.
func (c *Canvas) Background() string { return c.background }

// SetBackground sets the color the canvas is cleared with before replay.
func (c *Canvas) SetBackground(name string) { c.background = name }

func (c *Canvas) DrawRectangle(x1, y1, x2, y2 float64, fill string) {
	c.add(Command{
		Kind:    RectangleCommand,
		Points:  []Point{{x1, y1}, {x2, y2}},
		Fill:    fill,
		Outline: config.OutlineColor,
	})
}

func (c *Canvas) DrawEllipse(x1, y1, x2, y2 float64, fill string) {
	c.add(Command{
		Kind:    EllipseCommand,
		Points:  []Point{{x1, y1}, {x2, y2}},
		Fill:    fill,
		Outline: config.OutlineColor,
	})
}

func (c *Canvas) DrawPolygon(points []Point, fill string) {
	pts := make([]Point, len(points))
	copy(pts, points)
	c.add(Command{Kind: PolygonCommand, Points: pts, Fill: fill})
}

func (c *Canvas) add(cmd Command) {
	c.commands = append(c.commands, cmd)
	c.dispatcher.Dispatch(event.Event{Type: event.CommandIssued, Data: cmd})
}

// Commands returns the retained items in draw order.
func (c *Canvas) Commands() []Command {
	return c.commands
}

// Len returns the number of retained items.
func (c *Canvas) Len() int {
	return len(c.commands)
}

// Since returns the items drawn after the first n.
func (c *Canvas) Since(n int) []Command {
	if n >= len(c.commands) {
		return nil
	}
	return c.commands[n:]
}
