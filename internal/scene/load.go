// Package scene holds the declarative desk scene and draws it.
package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"deskscene/internal/texture"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownTexture  = errors.New("scene: unknown texture tag")
	ErrUnknownMaterial = errors.New("scene: unknown material tag")
	ErrAppearance      = errors.New("scene: object needs exactly one of texture, color or material")
)

//go:embed assets/desk.yaml
var deskYAML []byte

// Default returns the built-in desk scene.
func Default() (*Description, error) {
	return Parse(deskYAML)
}

// Load reads a description file. An empty path means the built-in scene.
func Load(path string) (*Description, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	d, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes and validates a YAML description.
func Parse(b []byte) (*Description, error) {
	var d Description
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	d.applyDefaults()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks that every tag an object references is declared by the
// description itself. Tags are case sensitive.
func (d *Description) Validate() error {
	if len(d.Textures) > texture.MaxSlots {
		return fmt.Errorf("scene: %w: %d textures declared, %d slots available",
			texture.ErrResourceExhausted, len(d.Textures), texture.MaxSlots)
	}
	textures := make(map[string]bool, len(d.Textures))
	for _, t := range d.Textures {
		if t.Tag == "" || t.Path == "" {
			return fmt.Errorf("scene: texture entry needs tag and path (tag %q, path %q)", t.Tag, t.Path)
		}
		if textures[t.Tag] {
			return fmt.Errorf("scene: texture %q declared twice", t.Tag)
		}
		textures[t.Tag] = true
	}
	materials := make(map[string]bool, len(d.Materials))
	for _, m := range d.Materials {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("scene: %w", err)
		}
		if materials[m.Tag] {
			return fmt.Errorf("scene: material %q declared twice", m.Tag)
		}
		materials[m.Tag] = true
	}
	if err := d.Lighting.Validate(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}

	for i, o := range d.Objects {
		name := o.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		switch o.Appearance() {
		case AppearanceTexture:
			if !textures[o.Texture.Tag] {
				return fmt.Errorf("object %s: %w %q", name, ErrUnknownTexture, o.Texture.Tag)
			}
			if o.Texture.Material != "" && !materials[o.Texture.Material] {
				return fmt.Errorf("object %s: %w %q", name, ErrUnknownMaterial, o.Texture.Material)
			}
		case AppearanceMaterial:
			if !materials[o.Material] {
				return fmt.Errorf("object %s: %w %q", name, ErrUnknownMaterial, o.Material)
			}
		case AppearanceColor:
		default:
			return fmt.Errorf("object %s: %w", name, ErrAppearance)
		}
	}
	return nil
}
