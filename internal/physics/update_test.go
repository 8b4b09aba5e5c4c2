package physics

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBody(t *testing.T, radius float64, pos, vel mgl64.Vec3) *Body {
	t.Helper()
	b, err := NewBody(radius, pos, vel, mgl64.Vec3{1, 1, 1})
	require.NoError(t, err)
	return b
}

func TestUpdateReflectsAtUpperX(t *testing.T) {
	const eps = 0.5
	r := 1.25
	b := mustBody(t, r, mgl64.Vec3{25 - r + eps, 0, -40}, mgl64.Vec3{0.02, 0, 0})

	flips := HandleCollision(b)

	assert.Equal(t, 1, flips)
	assert.Equal(t, 25-r, b.Position.X())
	assert.Equal(t, -0.02, b.Velocity.X())
}

func TestUpdateEndToEnd(t *testing.T) {
	b := mustBody(t, 1, mgl64.Vec3{24.1, 0, -40}, mgl64.Vec3{1, 0, 0})

	flips := Update(b, 1)

	assert.Equal(t, 1, flips)
	drag := math.Pow(0.9999, 1)
	assert.InDelta(t, -drag, b.Velocity.X(), 1e-12)
	assert.InDelta(t, -0.00025*drag, b.Velocity.Y(), 1e-15)
	assert.Equal(t, 0.0, b.Velocity.Z())
	assert.InDelta(t, 24-drag, b.Position.X(), 1e-12)
	assert.InDelta(t, -0.00025*drag, b.Position.Y(), 1e-15)
	assert.Equal(t, -40.0, b.Position.Z())
}

func TestUpdateZeroElapsedIsNoOp(t *testing.T) {
	b := mustBody(t, 2, mgl64.Vec3{3, -4, -30}, mgl64.Vec3{0.01, -0.03, 0.02})
	before := *b

	flips := Update(b, 0)

	assert.Zero(t, flips)
	assert.Equal(t, before.Position, b.Position)
	assert.Equal(t, before.Velocity, b.Velocity)
}

func TestUpdateZeroElapsedStillClamps(t *testing.T) {
	b := mustBody(t, 1, mgl64.Vec3{0, -30, -40}, mgl64.Vec3{0, -0.04, 0})

	flips := Update(b, 0)

	assert.Equal(t, 1, flips)
	assert.Equal(t, mgl64.Vec3{0, -24, -40}, b.Position)
	assert.Equal(t, mgl64.Vec3{0, 0.04, 0}, b.Velocity)
}

func TestUpdateGravityFromRest(t *testing.T) {
	for _, dt := range []float64{1, 16.6, 33.3, 100} {
		b := mustBody(t, 1, mgl64.Vec3{0, 0, -40}, mgl64.Vec3{})

		Update(b, dt)

		assert.Equal(t, Gravity*dt*math.Pow(DragBase, dt), b.Velocity.Y(), "dt=%v", dt)
		assert.Equal(t, 0.0, b.Velocity.X())
		assert.Equal(t, 0.0, b.Velocity.Z())
	}
}

func TestUpdateDragNeverAmplifies(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 42))
	for i := 0; i < 500; i++ {
		v := mgl64.Vec3{rng.Float64() - 0.5, rng.Float64() - 0.5, rng.Float64() - 0.5}
		b := mustBody(t, 1, mgl64.Vec3{0, 0, -40}, v)
		dt := rng.Float64() * 50

		Update(b, dt)

		assert.LessOrEqual(t, math.Abs(b.Velocity.X()), math.Abs(v.X()))
		assert.LessOrEqual(t, math.Abs(b.Velocity.Z()), math.Abs(v.Z()))
	}
}

func TestUpdateUsesCorrectedVelocityForIntegration(t *testing.T) {
	b := mustBody(t, 1, mgl64.Vec3{-30, 0, -40}, mgl64.Vec3{-0.5, 0, 0})

	Update(b, 2)

	// Clamped to -24, reflected, then moved back into the box.
	assert.Greater(t, b.Velocity.X(), 0.0)
	assert.Greater(t, b.Position.X(), -24.0)
}

func TestContainmentAfterCollision(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 1))
	for i := 0; i < 50; i++ {
		b := NewRandomBody(rng)
		// Fast enough to cross walls often.
		b.Velocity = b.Velocity.Mul(40)
		for step := 0; step < 400; step++ {
			probe := *b
			HandleCollision(&probe)
			require.True(t, Contains(&probe), "body %d step %d at %v", i, step, probe.Position)

			Update(b, rng.Float64()*40)
		}
	}
}
