package core

// GameObject is the motion state shared by paddles and the ball.
// Position is the center point; the world origin is bottom-left with Y up.
type GameObject struct {
	Position     Vector2
	Velocity     Vector2
	Acceleration Vector2
	Size         Vector2
}

func (o *GameObject) HalfSize() Vector2 {
	return o.Size.Scale(0.5)
}

func (o *GameObject) move(dt float32) {
	o.Position, o.Velocity = Integrate(dt, o.Position, o.Velocity, o.Acceleration)
}

// touchesVertical reports whether the object reaches the bottom or top edge.
func (o *GameObject) touchesVertical(screenHeight float32) bool {
	half := o.HalfSize()
	return o.Position.Y-half.Y <= 0 || o.Position.Y+half.Y >= screenHeight
}

func (o *GameObject) touchesHorizontal(screenWidth float32) bool {
	half := o.HalfSize()
	return o.Position.X-half.X <= 0 || o.Position.X+half.X >= screenWidth
}

// Body is the read-only view of an entity handed to renderers.
type Body struct {
	Position Vector2
	Size     Vector2
}

func (o *GameObject) Body() Body {
	return Body{Position: o.Position, Size: o.Size}
}
