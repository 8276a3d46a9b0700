package core

import (
	"Zrzynka/logger"
	"fmt"
)

// Match owns both paddles and the ball and advances them once per frame.
// It is driven by a single host loop and is not safe for concurrent use.
type Match struct {
	width, height float32

	left  *Paddle
	right *Paddle
	ball  *Ball
}

func NewMatch(width, height float32) *Match {
	return &Match{
		width:  width,
		height: height,
		left:   NewPaddle(PaddleWidth/2, height/2),
		right:  NewPaddle(width-PaddleWidth/2, height/2),
		ball:   NewBall(width/2, height/2),
	}
}

// Tick updates both paddles before the ball so the ball collides against
// the paddles' positions for this frame.
func (m *Match) Tick(dt float32) {
	m.left.Update(dt, m.height)
	m.right.Update(dt, m.height)
	m.ball.Update(dt, m.width, m.height, m.left, m.right)
}

func (m *Match) KeyDown(key Key) {
	switch key {
	case KeyLeftUp:
		m.left.AccelerateUp()
	case KeyLeftDown:
		m.left.AccelerateDown()
	case KeyRightUp:
		m.right.AccelerateUp()
	case KeyRightDown:
		m.right.AccelerateDown()
	case KeyServe:
		m.ball.Serve()
		logger.Log.Debug(fmt.Sprintf(logger.BallServedMsg, m.ball.Position, m.ball.Velocity))
	default:
		logger.Log.Debug(fmt.Sprintf(logger.KeyIgnoredMsg, key))
	}
}

// KeyUp releases the paddle bound to key. Either direction key zeroes the
// paddle's acceleration, even while the opposite key is still held.
func (m *Match) KeyUp(key Key) {
	switch key {
	case KeyLeftUp, KeyLeftDown:
		m.left.Release()
	case KeyRightUp, KeyRightDown:
		m.right.Release()
	}
}

func (m *Match) Size() (float32, float32) {
	return m.width, m.height
}

func (m *Match) LeftPaddle() Body {
	return m.left.Body()
}

func (m *Match) RightPaddle() Body {
	return m.right.Body()
}

func (m *Match) Ball() Body {
	return m.ball.Body()
}
