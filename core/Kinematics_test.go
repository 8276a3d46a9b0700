package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegrateAtRest(t *testing.T) {
	position := Vector2{X: 42, Y: -7}

	for _, dt := range []float32{0, 1.0 / 60, 1, 10} {
		p, v := Integrate(dt, position, Vector2{}, Vector2{})

		assert.Equal(t, position, p, "position should not move at rest (dt=%v)", dt)
		assert.Equal(t, Vector2{}, v, "velocity should stay zero at rest (dt=%v)", dt)
	}
}

func TestIntegrateFormula(t *testing.T) {
	p, v := Integrate(0.5, Vector2{X: 1, Y: 2}, Vector2{X: 3, Y: 4}, Vector2{X: 5, Y: 6})

	// p + v*dt + a*dt²/2
	assert.InDelta(t, 3.125, p.X, 1e-5)
	assert.InDelta(t, 4.75, p.Y, 1e-5)
	// v + a*dt - v*k*dt
	assert.InDelta(t, 5.35, v.X, 1e-5)
	assert.InDelta(t, 6.8, v.Y, 1e-5)
}

func TestIntegrateFrictionDampsVelocity(t *testing.T) {
	_, v := Integrate(1, Vector2{}, Vector2{X: 10, Y: -10}, Vector2{})

	assert.InDelta(t, 9, v.X, 1e-5, "friction should remove k*v*dt")
	assert.InDelta(t, -9, v.Y, 1e-5, "friction should act on each axis independently")
}

func TestSnapVelocity(t *testing.T) {
	tests := []struct {
		name string
		in   Vector2
		want Vector2
	}{
		{"both below threshold", Vector2{X: 0.004, Y: -0.004}, Vector2{}},
		{"only x below threshold", Vector2{X: -0.001, Y: 3}, Vector2{X: 0, Y: 3}},
		{"threshold itself is kept", Vector2{X: 0.005, Y: -0.005}, Vector2{X: 0.005, Y: -0.005}},
		{"above threshold", Vector2{X: 100, Y: -150}, Vector2{X: 100, Y: -150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SnapVelocity(tt.in))
		})
	}
}
