package physics

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Ranges used when a body is created from a random source. Positions start inside the box
// with some margin so a fresh body never spawns past a wall.
const (
	minRadius   = 0.75
	radiusRange = 2.0

	spawnXYMin   = -15.0
	spawnXYRange = 30.0
	spawnZMin    = -45.0
	spawnZRange  = 30.0

	spawnSpeedRange = 0.1
)

// ErrNonPositiveRadius is returned when a body would be created with a radius that is not a
// finite positive number.
var ErrNonPositiveRadius = errors.New("physics: radius must be finite and > 0")

// Body is a simulated sphere. Radius and Color are fixed at creation; Position and Velocity
// change on every Update. Velocity is in world units per millisecond.
type Body struct {
	Radius   float64    `yaml:"radius"`
	Position mgl64.Vec3 `yaml:"position"`
	Velocity mgl64.Vec3 `yaml:"velocity"`
	Color    mgl64.Vec3 `yaml:"color"`
}

// NewBody returns a body with explicit state. Used by fixtures and when loading saved state.
func NewBody(radius float64, position, velocity, color mgl64.Vec3) (*Body, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, ErrNonPositiveRadius
	}
	return &Body{
		Radius:   radius,
		Position: position,
		Velocity: velocity,
		Color:    color,
	}, nil
}

// NewRandomBody draws a body from rng: radius in [0.75, 2.75), x and y in [-15, 15),
// z in [-45, -15), each velocity component in [-0.05, 0.05) and each color channel in [0, 1).
func NewRandomBody(rng *rand.Rand) *Body {
	return &Body{
		Radius: rng.Float64()*radiusRange + minRadius,
		Position: mgl64.Vec3{
			rng.Float64()*spawnXYRange + spawnXYMin,
			rng.Float64()*spawnXYRange + spawnXYMin,
			rng.Float64()*spawnZRange + spawnZMin,
		},
		Velocity: mgl64.Vec3{
			rng.Float64()*spawnSpeedRange - spawnSpeedRange/2,
			rng.Float64()*spawnSpeedRange - spawnSpeedRange/2,
			rng.Float64()*spawnSpeedRange - spawnSpeedRange/2,
		},
		Color: mgl64.Vec3{rng.Float64(), rng.Float64(), rng.Float64()},
	}
}
