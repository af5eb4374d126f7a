package breakout

import "image/color"

// Transform is an entity's top-left position and its fixed size. It is
// always replaced as a whole; use MovedTo to derive a new position.
type Transform struct {
	X, Y float64
	W, H float64
}

// MovedTo returns a copy of t at (x, y) with the same size.
func (t Transform) MovedTo(x, y float64) Transform {
	return Transform{X: x, Y: y, W: t.W, H: t.H}
}

// Overlaps reports whether the boxes intersect with a non-zero area.
func (t Transform) Overlaps(o Transform) bool {
	return t.X < o.X+o.W && t.X+t.W > o.X && t.Y < o.Y+o.H && t.Y+t.H > o.Y
}

// CenterX returns the horizontal midpoint of the box.
func (t Transform) CenterX() float64 {
	return t.X + t.W/2
}

// Velocity is measured in screen units per tick.
type Velocity struct {
	VX, VY float64
}

type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeRectangle
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRectangle:
		return "rectangle"
	}
	return "unknown"
}

// Style is read only by renderers.
type Style struct {
	Shape Shape
	Color color.RGBA
}

// Role decides how the simulation treats an entity. It never changes after
// the entity is spawned.
type Role uint8

const (
	RoleBall Role = iota + 1
	RoleBrick
	RolePaddle
)

func (r Role) String() string {
	switch r {
	case RoleBall:
		return "ball"
	case RoleBrick:
		return "brick"
	case RolePaddle:
		return "paddle"
	}
	return "none"
}

var White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
