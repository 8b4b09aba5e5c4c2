// Package orbit keeps the viewer's camera on a sphere around a fixed target.
package orbit

import "github.com/chewxy/math32"

const (
	maxPitch    = math32.Pi/2 - 0.05
	minDistance = 5
	maxDistance = 250
)

// Orbit describes a camera looking at Target from Distance away. Yaw is measured around +Y
// from the +Z axis; Pitch raises the camera above the XZ plane. Angles are radians.
type Orbit struct {
	Target   [3]float32
	Distance float32
	Yaw      float32
	Pitch    float32
}

// New returns an orbit looking at target from +Z, i.e. looking down -Z as in the original
// course setup.
func New(target [3]float32, distance float32) Orbit {
	o := Orbit{Target: target, Distance: distance}
	o.Zoom(0)
	return o
}

// Position returns the camera position in world space.
func (o Orbit) Position() [3]float32 {
	cp := math32.Cos(o.Pitch)
	return [3]float32{
		o.Target[0] + o.Distance*cp*math32.Sin(o.Yaw),
		o.Target[1] + o.Distance*math32.Sin(o.Pitch),
		o.Target[2] + o.Distance*cp*math32.Cos(o.Yaw),
	}
}

// Rotate adds to yaw and pitch. Pitch stays short of straight up/down so the up vector stays valid.
func (o *Orbit) Rotate(dYaw, dPitch float32) {
	o.Yaw += dYaw
	if o.Yaw > math32.Pi {
		o.Yaw -= 2 * math32.Pi
	} else if o.Yaw < -math32.Pi {
		o.Yaw += 2 * math32.Pi
	}
	o.Pitch += dPitch
	if o.Pitch > maxPitch {
		o.Pitch = maxPitch
	}
	if o.Pitch < -maxPitch {
		o.Pitch = -maxPitch
	}
}

// Zoom changes the distance to the target, clamped to a usable range.
func (o *Orbit) Zoom(delta float32) {
	o.Distance += delta
	if o.Distance < minDistance {
		o.Distance = minDistance
	}
	if o.Distance > maxDistance {
		o.Distance = maxDistance
	}
}
