package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// Gravity is the downward acceleration on Y, in units per ms².
	Gravity = -0.00025
	// DragBase is the fraction of velocity kept per ms of elapsed time.
	DragBase = 0.9999
)

// Update advances b by elapsed milliseconds and returns the number of wall reflections.
// Collision runs first against the previous step's state, then gravity, drag, and finally
// position integration with the updated velocity.
//
// elapsed must be finite and >= 0. With elapsed == 0 only the collision clamp can change b.
func Update(b *Body, elapsed float64) int {
	flips := HandleCollision(b)

	b.Velocity = b.Velocity.Add(mgl64.Vec3{0, Gravity * elapsed, 0})
	b.Velocity = b.Velocity.Mul(math.Pow(DragBase, elapsed))
	b.Position = b.Position.Add(b.Velocity.Mul(elapsed))

	return flips
}
