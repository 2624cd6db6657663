package scene

import (
	"deskscene/internal/geometry"
	"deskscene/internal/material"
	"deskscene/internal/profiling"
	"deskscene/internal/texture"
	"deskscene/internal/transform"
	"deskscene/internal/uniform"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"
)

// MeshDrawer issues the draw call for a loaded primitive mesh.
type MeshDrawer interface {
	Draw(p geometry.Primitive)
}

// NeutralMaterial lights textured objects that do not name a material.
var NeutralMaterial = material.Material{
	Tag:             "neutral",
	AmbientColor:    mgl32.Vec3{1, 1, 1},
	AmbientStrength: 0.2,
	DiffuseColor:    mgl32.Vec3{1, 1, 1},
	SpecularColor:   mgl32.Vec3{0.5, 0.5, 0.5},
	Shininess:       32,
}

// FallbackColor is drawn, unlit, in place of a texture that failed to load.
var FallbackColor = mgl32.Vec4{0.6, 0.6, 0.6, 1}

// Renderer draws the object table of a Description.
type Renderer struct {
	uniforms  uniform.Setter
	textures  *texture.Registry
	materials *material.Registry
	meshes    MeshDrawer

	objects []preparedObject
}

type preparedObject struct {
	Object
	model mgl32.Mat4
}

func NewRenderer(u uniform.Setter, textures *texture.Registry, materials *material.Registry, meshes MeshDrawer) *Renderer {
	return &Renderer{
		uniforms:  u,
		textures:  textures,
		materials: materials,
		meshes:    meshes,
	}
}

// Prepare validates d, defines its materials, loads its textures and
// uploads its lights. A texture that fails to load is logged and skipped;
// objects using it fall back to FallbackColor. Any other error aborts.
func (r *Renderer) Prepare(d *Description) error {
	if err := d.Validate(); err != nil {
		return err
	}

	for _, m := range d.Materials {
		if err := r.materials.Define(m); err != nil {
			return err
		}
	}
	log.Info().Int("count", r.materials.Len()).Msg("materials defined")

	for _, t := range d.Textures {
		if err := r.textures.Load(t.Path, t.Tag); err != nil {
			log.Warn().Err(err).Str("tag", t.Tag).Str("path", t.Path).Msg("texture not loaded")
		}
	}
	r.textures.BindAll()

	if err := d.Lighting.Apply(r.uniforms); err != nil {
		return err
	}

	r.objects = make([]preparedObject, len(d.Objects))
	for i, o := range d.Objects {
		r.objects[i] = preparedObject{
			Object: o,
			model:  transform.ComposeModelMatrix(o.Scale, o.Rotation, o.Position),
		}
	}
	return nil
}

// ObjectCount is the number of draws per frame.
func (r *Renderer) ObjectCount() int { return len(r.objects) }

// RenderFrame draws every object in table order. Each draw sets its own
// model matrix, shading flags and appearance.
func (r *Renderer) RenderFrame() {
	defer profiling.Track("scene.RenderFrame")()
	for i := range r.objects {
		o := &r.objects[i]
		r.uniforms.SetMat4(uniform.Model, o.model)
		r.applyAppearance(&o.Object)
		r.meshes.Draw(o.Shape)
	}
}

func (r *Renderer) applyAppearance(o *Object) {
	switch o.Appearance() {
	case AppearanceTexture:
		slot, ok := r.textures.Bind(o.Texture.Tag)
		if !ok {
			r.flat(FallbackColor)
			return
		}
		r.uniforms.SetBool(uniform.UseTexture, true)
		r.uniforms.SetBool(uniform.UseLighting, true)
		r.uniforms.SetSampler2D(uniform.ObjectTexture, int32(slot))
		r.uniforms.SetVec2(uniform.UVScale, o.Texture.UVScale)
		m, ok := r.materials.Find(o.Texture.Material)
		if !ok {
			m = NeutralMaterial
		}
		m.Upload(r.uniforms)
	case AppearanceColor:
		r.flat(*o.Color)
	case AppearanceMaterial:
		m, ok := r.materials.Find(o.Material)
		if !ok {
			r.flat(FallbackColor)
			return
		}
		r.uniforms.SetBool(uniform.UseTexture, false)
		r.uniforms.SetBool(uniform.UseLighting, true)
		m.Upload(r.uniforms)
	default:
		r.flat(FallbackColor)
	}
}

func (r *Renderer) flat(c mgl32.Vec4) {
	r.uniforms.SetBool(uniform.UseTexture, false)
	r.uniforms.SetBool(uniform.UseLighting, false)
	r.uniforms.SetVec4(uniform.ObjectColor, c)
}

// Dispose releases the scene textures.
func (r *Renderer) Dispose() {
	r.textures.ReleaseAll()
	r.objects = nil
}
