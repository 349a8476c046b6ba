// internal/app/scenes.go
package app

import (
	"go-drawing-shapes/internal/shape"
)

// DemoScene draws the classic demo: a random triangle, a yellow rectangle,
// a default oval and an oval configured through its setters.
func DemoScene(p *Paper) error {
	// Случайный треугольник
	tri, err := p.Add(shape.KindTriangle)
	if err != nil {
		return err
	}
	p.Randomize(tri)
	tri.Draw()

	rect, err := p.Add(shape.KindRectangle,
		shape.WithSize(90, 40),
		shape.WithPosition(110, 20),
		shape.WithColor("yellow"),
	)
	if err != nil {
		return err
	}
	rect.Draw()

	oval, err := p.Add(shape.KindOval)
	if err != nil {
		return err
	}
	oval.Draw()

	oval2, err := p.Add(shape.KindOval)
	if err != nil {
		return err
	}
	if err := oval2.SetHeight(200); err != nil {
		return err
	}
	if err := oval2.SetWidth(100); err != nil {
		return err
	}
	oval2.SetColor("fuchsia")
	oval2.SetX(30)
	oval2.SetY(90)
	oval2.Draw()

	p.Logger.WithField("shapes", len(p.Shapes())).Info("demo scene drawn")
	return nil
}

// RandomScene draws count shapes of random kinds with random attributes.
func RandomScene(p *Paper, count int) error {
	kinds := []shape.Kind{shape.KindRectangle, shape.KindOval, shape.KindTriangle}
	for i := 0; i < count; i++ {
		d, err := p.Add(kinds[p.Rng.Intn(len(kinds))])
		if err != nil {
			return err
		}
		p.Randomize(d)
		d.Draw()
	}
	p.Logger.WithField("shapes", count).Info("random scene drawn")
	return nil
}
