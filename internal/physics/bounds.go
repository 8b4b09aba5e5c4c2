package physics

// Walls of the play volume in world units. The box sits in front of a camera looking down -Z,
// so it is centered on z = -40 rather than the origin.
const (
	WallMinX = -25.0
	WallMaxX = 25.0
	WallMinY = -25.0
	WallMaxY = 25.0
	WallMinZ = -65.0
	WallMaxZ = -15.0
)

var (
	wallMin = [3]float64{WallMinX, WallMinY, WallMinZ}
	wallMax = [3]float64{WallMaxX, WallMaxY, WallMaxZ}
)

// Lower returns the smallest coordinate a body's center may take on axis (0=X, 1=Y, 2=Z).
func Lower(axis int, radius float64) float64 {
	return wallMin[axis] + radius
}

// Upper returns the largest coordinate a body's center may take on axis (0=X, 1=Y, 2=Z).
func Upper(axis int, radius float64) float64 {
	return wallMax[axis] - radius
}

// Contains reports whether every coordinate of b's center is within [Lower, Upper].
func Contains(b *Body) bool {
	for axis := 0; axis < 3; axis++ {
		p := b.Position[axis]
		if p < Lower(axis, b.Radius) || p > Upper(axis, b.Radius) {
			return false
		}
	}
	return true
}

// HandleCollision reflects b off any wall it touches or has passed. For each axis, reaching the
// upper plane negates the velocity on that axis and clamps the position to the plane; the lower
// plane is checked the same way, independently. Returns the number of reflections applied.
func HandleCollision(b *Body) int {
	var flips int
	r := b.Radius
	for axis := 0; axis < 3; axis++ {
		p := b.Position[axis]
		// Both checks read p from before either clamp.
		if hi := Upper(axis, r); p >= hi {
			b.Velocity[axis] = -b.Velocity[axis]
			b.Position[axis] = hi
			flips++
		}
		if lo := Lower(axis, r); p <= lo {
			b.Velocity[axis] = -b.Velocity[axis]
			b.Position[axis] = lo
			flips++
		}
	}
	return flips
}
