package primitives

import rl "github.com/gen2brain/raylib-go/raylib"

// loadLitShader returns a shader with one directional light, ambient and a Blinn-Phong highlight.
// Attribute names match raylib's default mesh layout.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec3 n = normalize(fragNormal);
  vec3 l = normalize(lightDir);
  vec3 v = normalize(viewPos - fragPosition);
  float lambert = max(dot(n, l), 0.0);
  float spec = 0.0;
  if (lambert > 0.0) {
    spec = pow(max(dot(n, normalize(l + v)), 0.0), specularPower) * specularStrength;
  }
  vec3 rgb = colDiffuse.rgb * (ambient.rgb + lambert * lightColor) + lightColor * spec;
  finalColor = vec4(rgb, colDiffuse.a);
}
`
)

var (
	ambientColor = [4]float32{0.2, 0.22, 0.26, 1.0}
	lightColor   = [3]float32{1.0, 0.98, 0.95}
)

const (
	specularPower    = float32(48.0)
	specularStrength = float32(0.35)
)

// setUniforms uploads per-frame lighting values. Arrays are copied locally before handing them to cgo.
func setUniforms(shader rl.Shader, viewPos, lightDir [3]float32) {
	if !rl.IsShaderValid(shader) {
		return
	}
	vp := viewPos
	ld := lightDir
	amb := ambientColor
	lc := lightColor
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, vp[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, ld[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lc[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularStrength}, rl.ShaderUniformFloat)
	}
}
