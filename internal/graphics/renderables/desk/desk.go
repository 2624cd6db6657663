// Package desk renders the desk scene description with the lit scene shader.
package desk

import (
	"path/filepath"

	"deskscene/internal/graphics"
	renderer "deskscene/internal/graphics/renderer"
	"deskscene/internal/material"
	"deskscene/internal/scene"
	"deskscene/internal/texture"
	"deskscene/internal/uniform"
)

const DefaultShadersDir = "assets/shaders/scene"

// Desk implements renderer.Renderable for a scene.Description.
type Desk struct {
	shadersDir string
	desc       *scene.Description

	shader    *graphics.Shader
	meshes    *graphics.ShapeMeshes
	textures  *texture.Registry
	materials *material.Registry
	scene     *scene.Renderer
}

// New creates the renderable. An empty shadersDir means DefaultShadersDir.
func New(desc *scene.Description, shadersDir string) *Desk {
	if shadersDir == "" {
		shadersDir = DefaultShadersDir
	}
	return &Desk{shadersDir: shadersDir, desc: desc}
}

// Init compiles the shader, uploads meshes and textures and pushes the lights.
func (d *Desk) Init() error {
	var err error
	d.shader, err = graphics.NewShader(
		filepath.Join(d.shadersDir, "scene.vert"),
		filepath.Join(d.shadersDir, "scene.frag"),
	)
	if err != nil {
		return err
	}

	d.meshes = graphics.NewShapeMeshes()
	if err := d.meshes.Load(d.desc.Primitives()...); err != nil {
		return err
	}

	d.textures = texture.NewRegistry(graphics.TextureBackend{}, nil)
	d.materials = material.NewRegistry()
	d.scene = scene.NewRenderer(d.shader, d.textures, d.materials, d.meshes)

	d.shader.Use()
	return d.scene.Prepare(d.desc)
}

// Render pushes the camera uniforms and draws the object table.
func (d *Desk) Render(ctx renderer.RenderContext) {
	d.shader.Use()
	d.shader.SetMat4(uniform.View, ctx.View)
	d.shader.SetMat4(uniform.Projection, ctx.Proj)
	d.shader.SetVec3(uniform.ViewPosition, ctx.Eye)
	d.scene.RenderFrame()
}

// Dispose releases textures, meshes and the program.
func (d *Desk) Dispose() {
	if d.scene != nil {
		d.scene.Dispose()
	}
	if d.meshes != nil {
		d.meshes.Dispose()
	}
	if d.shader != nil {
		d.shader.Delete()
	}
}

// SetViewport is a no-op; the projection comes from the render context.
func (d *Desk) SetViewport(width, height int) {}
