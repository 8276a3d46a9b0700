package core

const PaddleWidth = 20         // 球拍寬度
const PaddleHeight = 100       // 球拍高度
const PaddleAcceleration = 9.0 // 按鍵給的加速度

type Paddle struct {
	GameObject
}

func NewPaddle(x, y float32) *Paddle {
	return &Paddle{
		GameObject: GameObject{
			Position: Vector2{X: x, Y: y},
			Size:     Vector2{X: PaddleWidth, Y: PaddleHeight},
		},
	}
}

// Update reflects off the top/bottom border and then integrates motion.
// The position is never clamped, so a large dt may leave the paddle outside
// the screen until it reflects back.
func (p *Paddle) Update(dt, screenHeight float32) {
	if p.touchesVertical(screenHeight) {
		p.Velocity.Y = -p.Velocity.Y
	}
	p.move(dt)
}

func (p *Paddle) AccelerateUp() {
	p.Acceleration.Y = PaddleAcceleration
}

func (p *Paddle) AccelerateDown() {
	p.Acceleration.Y = -PaddleAcceleration
}

// Release zeroes the vertical acceleration no matter which key set it.
func (p *Paddle) Release() {
	p.Acceleration.Y = 0
}
