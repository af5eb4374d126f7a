package breakout

import (
	"image/color"

	"github.com/plus3/brickfall/ecs"
)

// Renderable is what a host needs to draw one entity. Circles use Radius;
// rectangles use W and H.
type Renderable struct {
	Shape  Shape
	X, Y   float64
	W, H   float64
	Radius float64
	Color  color.RGBA
}

// Renderables lists every drawable entity in store order.
func (e *Engine) Renderables() []Renderable {
	view := ecs.NewView[struct {
		*Transform
		*Style
	}](e.storage)

	out := make([]Renderable, 0, e.storage.Len())
	for item := range view.Values() {
		r := Renderable{
			Shape: item.Style.Shape,
			X:     item.Transform.X,
			Y:     item.Transform.Y,
			W:     item.Transform.W,
			H:     item.Transform.H,
			Color: item.Style.Color,
		}
		if r.Shape == ShapeCircle {
			r.Radius = BallRadius
		}
		out = append(out, r)
	}
	return out
}
