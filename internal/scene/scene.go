package scene

import (
	"sphere-sim/internal/orbit"
	"sphere-sim/internal/physics"
	"sphere-sim/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cameraDistance = 80
	fovy           = 45
	// orbitSpeed is radians per second while an arrow key is held.
	orbitSpeed = 1.2
	// zoomSpeed is world units per second while +/- is held.
	zoomSpeed = 40
	boxAlpha  = 160
)

var boxColor = rl.NewColor(120, 160, 220, boxAlpha)

// Scene holds the camera and draws the box and the spheres. Update reads camera keys;
// Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera     rl.Camera3D
	BoxVisible bool
	orbit      orbit.Orbit
	spheres    *primitives.Spheres
	instances  []primitives.Instance
}

// New returns a scene whose camera looks down -Z at the center of the box.
func New() *Scene {
	s := &Scene{
		BoxVisible: true,
		orbit:      orbit.New(boxCenter(), cameraDistance),
		spheres:    primitives.NewSpheres(),
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = fovy
	s.Camera.Projection = rl.CameraPerspective
	s.syncCamera()
	return s
}

// SetBoxVisible sets whether the box wireframe is drawn.
func (s *Scene) SetBoxVisible(visible bool) {
	s.BoxVisible = visible
}

// Update runs once per frame: arrow keys orbit the camera, +/- zoom.
// Skipped by the caller while the terminal has focus.
func (s *Scene) Update(frameSeconds float32) {
	var dYaw, dPitch, dZoom float32
	if rl.IsKeyDown(rl.KeyLeft) {
		dYaw -= orbitSpeed * frameSeconds
	}
	if rl.IsKeyDown(rl.KeyRight) {
		dYaw += orbitSpeed * frameSeconds
	}
	if rl.IsKeyDown(rl.KeyUp) {
		dPitch += orbitSpeed * frameSeconds
	}
	if rl.IsKeyDown(rl.KeyDown) {
		dPitch -= orbitSpeed * frameSeconds
	}
	if rl.IsKeyDown(rl.KeyEqual) || rl.IsKeyDown(rl.KeyKpAdd) {
		dZoom -= zoomSpeed * frameSeconds
	}
	if rl.IsKeyDown(rl.KeyMinus) || rl.IsKeyDown(rl.KeyKpSubtract) {
		dZoom += zoomSpeed * frameSeconds
	}
	dZoom -= rl.GetMouseWheelMove() * 4
	s.orbit.Rotate(dYaw, dPitch)
	s.orbit.Zoom(dZoom)
	s.syncCamera()
}

func (s *Scene) syncCamera() {
	p := s.orbit.Position()
	t := s.orbit.Target
	s.Camera.Position = rl.NewVector3(p[0], p[1], p[2])
	s.Camera.Target = rl.NewVector3(t[0], t[1], t[2])
}

// Draw renders the box and bodies. Call after ClearBackground and before 2D overlays.
func (s *Scene) Draw(bodies []*physics.Body) {
	s.instances = s.instances[:0]
	for _, b := range bodies {
		s.instances = append(s.instances, Instance(b))
	}

	pos := s.orbit.Position()
	s.spheres.SetView(pos, [3]float32{0.5, 1, 0.5})

	rl.BeginMode3D(s.Camera)
	if s.BoxVisible {
		c := boxCenter()
		rl.DrawCubeWires(rl.NewVector3(c[0], c[1], c[2]),
			physics.WallMaxX-physics.WallMinX,
			physics.WallMaxY-physics.WallMinY,
			physics.WallMaxZ-physics.WallMinZ,
			boxColor)
	}
	s.spheres.Draw(s.instances)
	rl.EndMode3D()
}

// Unload frees GPU resources held by the scene.
func (s *Scene) Unload() {
	s.spheres.Unload()
}

// Instance converts a body to a draw instance. Color channels in [0, 1) map to 0..255.
func Instance(b *physics.Body) primitives.Instance {
	return primitives.Instance{
		Position: [3]float32{float32(b.Position[0]), float32(b.Position[1]), float32(b.Position[2])},
		Radius:   float32(b.Radius),
		Color: rl.NewColor(
			channel(b.Color[0]),
			channel(b.Color[1]),
			channel(b.Color[2]),
			255,
		),
	}
}

func channel(c float64) uint8 {
	switch {
	case c <= 0:
		return 0
	case c >= 1:
		return 255
	}
	return uint8(c * 256)
}

func boxCenter() [3]float32 {
	return [3]float32{
		(physics.WallMinX + physics.WallMaxX) / 2,
		(physics.WallMinY + physics.WallMaxY) / 2,
		(physics.WallMinZ + physics.WallMaxZ) / 2,
	}
}
