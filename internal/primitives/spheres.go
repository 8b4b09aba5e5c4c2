package primitives

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	sphereRings  = 16
	sphereSlices = 16
)

// Instance is one sphere to draw: center, radius and flat color.
type Instance struct {
	Position [3]float32
	Radius   float32
	Color    rl.Color
}

// Spheres draws lit spheres. The unit mesh and material are created on first Draw so that GPU
// resources are allocated after the window/OpenGL context exists.
type Spheres struct {
	mesh     rl.Mesh
	mtl      rl.Material
	ready    bool
	viewPos  [3]float32
	lightDir [3]float32
}

// NewSpheres returns a renderer with the light coming from above-right.
func NewSpheres() *Spheres {
	return &Spheres{lightDir: [3]float32{0.5, 1, 0.5}}
}

// SetView sets camera position and direction-to-light for this frame.
func (s *Spheres) SetView(viewPos, lightDir [3]float32) {
	s.viewPos = viewPos
	s.lightDir = lightDir
}

func (s *Spheres) ensure() {
	if s.ready {
		return
	}
	// Radius 1 so the model matrix scales straight by the body radius.
	s.mesh = rl.GenMeshSphere(1, sphereRings, sphereSlices)
	s.mtl = rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		s.mtl.Shader = shader
	}
	s.ready = true
}

// Draw renders every instance. Must be called between BeginMode3D and EndMode3D.
func (s *Spheres) Draw(instances []Instance) {
	if len(instances) == 0 {
		return
	}
	s.ensure()
	setUniforms(s.mtl.Shader, s.viewPos, s.lightDir)
	albedo := s.mtl.GetMap(rl.MapAlbedo)
	for _, in := range instances {
		if albedo != nil {
			albedo.Color = in.Color
		}
		scale := rl.MatrixScale(in.Radius, in.Radius, in.Radius)
		trans := rl.MatrixTranslate(in.Position[0], in.Position[1], in.Position[2])
		rl.DrawMesh(s.mesh, s.mtl, rl.MatrixMultiply(scale, trans))
	}
}

// Unload frees GPU resources. Safe to call when nothing was drawn.
func (s *Spheres) Unload() {
	if !s.ready {
		return
	}
	rl.UnloadMesh(&s.mesh)
	rl.UnloadMaterial(s.mtl)
	s.ready = false
}
