package core

const Friction = 0.1      // 速度阻尼係數 k
const MinVelocity = 0.005 // 低於此值的速度分量歸零

// Integrate advances a body by dt seconds under constant acceleration with
// proportional friction, each axis independently:
//
//	p' = p + v*dt + a*dt²/2
//	v' = v + a*dt - v*k*dt
func Integrate(dt float32, position, velocity, acceleration Vector2) (Vector2, Vector2) {
	p := Vector2{
		X: integratePosition(dt, position.X, velocity.X, acceleration.X),
		Y: integratePosition(dt, position.Y, velocity.Y, acceleration.Y),
	}
	v := Vector2{
		X: integrateVelocity(dt, velocity.X, acceleration.X),
		Y: integrateVelocity(dt, velocity.Y, acceleration.Y),
	}
	return p, v
}

func integratePosition(dt, p, v, a float32) float32 {
	return p + v*dt + a*dt*dt/2
}

func integrateVelocity(dt, v, a float32) float32 {
	return v + a*dt - v*Friction*dt
}

// SnapVelocity zeroes every axis whose magnitude fell below MinVelocity.
func SnapVelocity(velocity Vector2) Vector2 {
	return Vector2{X: snapAxis(velocity.X), Y: snapAxis(velocity.Y)}
}

func snapAxis(v float32) float32 {
	if v > -MinVelocity && v < MinVelocity {
		return 0
	}
	return v
}
