// Package lighting pushes the fixed scene lights to the shader.
package lighting

import (
	"fmt"

	"deskscene/internal/uniform"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"
)

// MaxLights matches the lightSources array length in the fragment shader.
const MaxLights = 3

// Source is one light. A nil Direction uploads the zero vector, which the
// shader treats as an omnidirectional light.
type Source struct {
	Position          mgl32.Vec3  `yaml:"position"`
	Direction         *mgl32.Vec3 `yaml:"direction,omitempty"`
	AmbientColor      mgl32.Vec3  `yaml:"ambient_color"`
	DiffuseColor      mgl32.Vec3  `yaml:"diffuse_color"`
	SpecularColor     mgl32.Vec3  `yaml:"specular_color"`
	FocalStrength     float32     `yaml:"focal_strength"`
	SpecularIntensity float32     `yaml:"specular_intensity"`
}

// Setup is the whole lighting configuration of a scene.
type Setup struct {
	GlobalAmbient mgl32.Vec3 `yaml:"global_ambient"`
	Sources       []Source   `yaml:"sources"`
}

func (s Setup) Validate() error {
	if len(s.Sources) > MaxLights {
		return fmt.Errorf("lighting: %d light sources, at most %d supported", len(s.Sources), MaxLights)
	}
	for i, src := range s.Sources {
		if src.Direction != nil && src.Direction.Len() == 0 {
			return fmt.Errorf("lighting: light %d has a zero direction", i)
		}
	}
	return nil
}

// Apply uploads the global ambient term and all MaxLights slots. Slots
// without a source are zeroed so no stale light survives a scene reload.
func (s Setup) Apply(u uniform.Setter) error {
	if err := s.Validate(); err != nil {
		return err
	}

	u.SetBool(uniform.UseLighting, true)
	u.SetVec3(uniform.GlobalAmbient, s.GlobalAmbient)

	for i := 0; i < MaxLights; i++ {
		var src Source
		if i < len(s.Sources) {
			src = s.Sources[i]
		}
		var dir mgl32.Vec3
		if src.Direction != nil {
			dir = src.Direction.Normalize()
		}
		u.SetVec3(uniform.LightField(i, "position"), src.Position)
		u.SetVec3(uniform.LightField(i, "direction"), dir)
		u.SetVec3(uniform.LightField(i, "ambientColor"), src.AmbientColor)
		u.SetVec3(uniform.LightField(i, "diffuseColor"), src.DiffuseColor)
		u.SetVec3(uniform.LightField(i, "specularColor"), src.SpecularColor)
		u.SetFloat(uniform.LightField(i, "focalStrength"), src.FocalStrength)
		u.SetFloat(uniform.LightField(i, "specularIntensity"), src.SpecularIntensity)
	}

	log.Info().Int("lights", len(s.Sources)).Msg("scene lights applied")
	return nil
}
