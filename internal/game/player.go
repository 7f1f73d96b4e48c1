package game

import "github.com/mkarpov/circlerun/internal/core"

// Player is the physics-driven circle. Created at round start, mutated once
// per tick, replaced wholesale on reset.
type Player struct {
	X           float64 // Fixed horizontal position on screen
	Y           float64 // Vertical position of the center
	Radius      float64
	VelY        float64 // Positive = down
	JumpImpulse float64 // Negative = up
	Gravity     float64 // Per tick
}

// Jump sets the vertical velocity to the impulse; the player moves upward
// over the following ticks.
func (p *Player) Jump() {
	p.VelY = p.JumpImpulse
}

// UpdatePosition integrates one tick of vertical motion. Gravity is applied
// to the velocity before the position update, and the result is clamped at
// the floor. There is deliberately no ceiling clamp.
func (p *Player) UpdatePosition(floorY float64) {
	p.VelY += p.Gravity
	p.Y += p.VelY

	if p.Y >= floorY-p.Radius {
		p.Y = floorY - p.Radius
		p.VelY = 0
	}
}

// Circle returns the player's collision circle.
func (p Player) Circle() core.CircleF {
	return core.CircleF{X: p.X, Y: p.Y, R: p.Radius}
}
