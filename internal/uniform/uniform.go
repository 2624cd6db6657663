package uniform

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Setter uploads named uniform values to the active shader program.
// graphics.Shader implements it against OpenGL; uniformtest.Recorder
// implements it in memory.
type Setter interface {
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec2(name string, value mgl32.Vec2)
	SetVec3(name string, value mgl32.Vec3)
	SetVec4(name string, value mgl32.Vec4)
	SetMat4(name string, value mgl32.Mat4)
	SetSampler2D(name string, slot int32)
}

// Uniform names shared with assets/shaders/scene.
const (
	Model        = "model"
	View         = "view"
	Projection   = "projection"
	ViewPosition = "viewPosition"

	ObjectColor   = "objectColor"
	ObjectTexture = "objectTexture"
	UseTexture    = "bUseTexture"
	UseLighting   = "bUseLighting"
	UVScale       = "UVscale"

	GlobalAmbient = "globalAmbient"

	MaterialAmbientColor    = "material.ambientColor"
	MaterialAmbientStrength = "material.ambientStrength"
	MaterialDiffuseColor    = "material.diffuseColor"
	MaterialSpecularColor   = "material.specularColor"
	MaterialShininess       = "material.shininess"
)

// LightField returns the uniform name of a field of the i-th light source,
// e.g. LightField(0, "position") == "lightSources[0].position".
func LightField(i int, field string) string {
	return fmt.Sprintf("lightSources[%d].%s", i, field)
}
