package core

import "fmt"

// Vector2 is a pair of float32 components in world space.
type Vector2 struct {
	X, Y float32
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) String() string {
	return fmt.Sprintf("{%.2f, %.2f}", v.X, v.Y)
}
