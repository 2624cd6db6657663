// Package material holds the named lighting materials of a scene.
package material

import (
	"errors"
	"fmt"

	"deskscene/internal/uniform"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrDuplicateTag = errors.New("material: duplicate tag")

// Material describes how a surface responds to the scene lights.
type Material struct {
	Tag             string     `yaml:"tag"`
	AmbientColor    mgl32.Vec3 `yaml:"ambient_color"`
	AmbientStrength float32    `yaml:"ambient_strength"`
	DiffuseColor    mgl32.Vec3 `yaml:"diffuse_color"`
	SpecularColor   mgl32.Vec3 `yaml:"specular_color"`
	Shininess       float32    `yaml:"shininess"`
}

// Validate checks the value ranges the lighting model expects.
func (m Material) Validate() error {
	if m.Tag == "" {
		return errors.New("material: empty tag")
	}
	if m.AmbientStrength < 0 || m.AmbientStrength > 1 {
		return fmt.Errorf("material %q: ambient strength %v outside [0,1]", m.Tag, m.AmbientStrength)
	}
	if m.Shininess <= 0 {
		return fmt.Errorf("material %q: shininess must be positive, got %v", m.Tag, m.Shininess)
	}
	return nil
}

// Upload writes the material uniforms.
func (m Material) Upload(u uniform.Setter) {
	u.SetVec3(uniform.MaterialAmbientColor, m.AmbientColor)
	u.SetFloat(uniform.MaterialAmbientStrength, m.AmbientStrength)
	u.SetVec3(uniform.MaterialDiffuseColor, m.DiffuseColor)
	u.SetVec3(uniform.MaterialSpecularColor, m.SpecularColor)
	u.SetFloat(uniform.MaterialShininess, m.Shininess)
}

// Registry holds the materials defined for a scene.
type Registry struct {
	order []string
	byTag map[string]Material
}

func NewRegistry() *Registry {
	return &Registry{byTag: make(map[string]Material)}
}

// Define adds m. Materials are immutable once defined, so a second
// definition under the same tag is an error.
func (r *Registry) Define(m Material) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if _, ok := r.byTag[m.Tag]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTag, m.Tag)
	}
	r.byTag[m.Tag] = m
	r.order = append(r.order, m.Tag)
	return nil
}

// Find returns the material registered under tag.
func (r *Registry) Find(tag string) (Material, bool) {
	m, ok := r.byTag[tag]
	return m, ok
}

func (r *Registry) Len() int { return len(r.order) }

// Tags lists tags in definition order.
func (r *Registry) Tags() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
