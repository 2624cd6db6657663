package scene

import (
	"deskscene/internal/geometry"
	"deskscene/internal/lighting"
	"deskscene/internal/material"

	"github.com/go-gl/mathgl/mgl32"
)

// AppearanceKind tells how an object is shaded.
type AppearanceKind int

const (
	AppearanceNone AppearanceKind = iota
	AppearanceTexture
	AppearanceColor
	AppearanceMaterial
)

func (k AppearanceKind) String() string {
	switch k {
	case AppearanceTexture:
		return "texture"
	case AppearanceColor:
		return "color"
	case AppearanceMaterial:
		return "material"
	}
	return "none"
}

// TextureRef declares an image file under a tag.
type TextureRef struct {
	Tag  string `yaml:"tag"`
	Path string `yaml:"path"`
}

// TextureAppearance samples a registered texture. Material, when set, names
// the lighting response of the textured surface.
type TextureAppearance struct {
	Tag      string     `yaml:"tag"`
	UVScale  mgl32.Vec2 `yaml:"uv_scale,omitempty"`
	Material string     `yaml:"material,omitempty"`
}

// Object is one row of the scene table. Exactly one of Texture, Color and
// Material is set.
type Object struct {
	Name     string             `yaml:"name"`
	Shape    geometry.Primitive `yaml:"shape"`
	Scale    mgl32.Vec3         `yaml:"scale"`
	Rotation mgl32.Vec3         `yaml:"rotation,omitempty"` // degrees about X, Y, Z
	Position mgl32.Vec3         `yaml:"position"`

	Texture  *TextureAppearance `yaml:"texture,omitempty"`
	Color    *mgl32.Vec4        `yaml:"color,omitempty"`
	Material string             `yaml:"material,omitempty"`
}

// Appearance reports which shading the object uses. AppearanceNone means
// zero or more than one appearance is set.
func (o Object) Appearance() AppearanceKind {
	kind, n := AppearanceNone, 0
	if o.Texture != nil {
		kind, n = AppearanceTexture, n+1
	}
	if o.Color != nil {
		kind, n = AppearanceColor, n+1
	}
	if o.Material != "" {
		kind, n = AppearanceMaterial, n+1
	}
	if n != 1 {
		return AppearanceNone
	}
	return kind
}

// Description is the whole static scene: resources plus the object table.
type Description struct {
	Textures  []TextureRef        `yaml:"textures"`
	Materials []material.Material `yaml:"materials"`
	Lighting  lighting.Setup      `yaml:"lighting"`
	Objects   []Object            `yaml:"objects"`
}

// Primitives lists the distinct shapes the objects use, in first-use order.
func (d *Description) Primitives() []geometry.Primitive {
	seen := make(map[geometry.Primitive]bool)
	var out []geometry.Primitive
	for _, o := range d.Objects {
		if !seen[o.Shape] {
			seen[o.Shape] = true
			out = append(out, o.Shape)
		}
	}
	return out
}

// applyDefaults fills the values a description may leave out.
func (d *Description) applyDefaults() {
	for i := range d.Objects {
		o := &d.Objects[i]
		if o.Scale == (mgl32.Vec3{}) {
			o.Scale = mgl32.Vec3{1, 1, 1}
		}
		if o.Texture != nil && o.Texture.UVScale == (mgl32.Vec2{}) {
			o.Texture.UVScale = mgl32.Vec2{1, 1}
		}
	}
}
