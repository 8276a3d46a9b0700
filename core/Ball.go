package core

const BallSize = 20 // 球的邊長

// 發球速度
const ServeVelocityX = 100
const ServeVelocityY = 150

// PaddleHitMargin scales the paddle size into the half-extent of its hit box.
// A margin of 1 gives a box twice the size of the drawn paddle.
const PaddleHitMargin = 1.0

type Ball struct {
	GameObject
}

func NewBall(x, y float32) *Ball {
	return &Ball{
		GameObject: GameObject{
			Position: Vector2{X: x, Y: y},
			Size:     Vector2{X: BallSize, Y: BallSize},
		},
	}
}

// Serve overwrites the velocity with the fixed serve vector.
func (b *Ball) Serve() {
	b.Velocity = Vector2{X: ServeVelocityX, Y: ServeVelocityY}
}

func (b *Ball) Served() bool {
	return b.Velocity != Vector2{}
}

// Update reflects off the borders, integrates motion and then bounces off
// the left and the right paddle, in that order.
func (b *Ball) Update(dt, screenWidth, screenHeight float32, left, right *Paddle) {
	b.reflectBorders(screenWidth, screenHeight)
	b.move(dt)
	b.Velocity = SnapVelocity(b.Velocity)

	for _, paddle := range []*Paddle{left, right} {
		if b.hits(paddle) {
			b.Velocity = b.Velocity.Scale(-1)
		}
	}
}

func (b *Ball) reflectBorders(screenWidth, screenHeight float32) {
	if b.touchesVertical(screenHeight) {
		b.Velocity.Y = -b.Velocity.Y
	}
	if b.touchesHorizontal(screenWidth) {
		b.Velocity.X = -b.Velocity.X
	}
}

// hits checks whether the ball's high corner (position + size) or low corner
// (position - size) lies inside the paddle hit box.
func (b *Ball) hits(paddle *Paddle) bool {
	margin := paddle.Size.Scale(PaddleHitMargin)
	low := paddle.Position.Sub(margin)
	high := paddle.Position.Add(margin)

	return inBox(b.Position.Add(b.Size), low, high) || inBox(b.Position.Sub(b.Size), low, high)
}

func inBox(point, low, high Vector2) bool {
	return point.X >= low.X && point.X <= high.X &&
		point.Y >= low.Y && point.Y <= high.Y
}
