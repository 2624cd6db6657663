package graphics

import (
	"fmt"

	"deskscene/internal/geometry"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/rs/zerolog/log"
)

type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// ShapeMeshes owns one vertex array per loaded primitive. Attribute 0 is the
// position, 1 the normal and 2 the texture coordinate.
type ShapeMeshes struct {
	meshes map[geometry.Primitive]*gpuMesh
}

func NewShapeMeshes() *ShapeMeshes {
	return &ShapeMeshes{meshes: make(map[geometry.Primitive]*gpuMesh)}
}

// Load tessellates and uploads each primitive not loaded yet.
func (s *ShapeMeshes) Load(prims ...geometry.Primitive) error {
	for _, p := range prims {
		if _, ok := s.meshes[p]; ok {
			continue
		}
		m, err := geometry.Generate(p)
		if err != nil {
			return fmt.Errorf("load mesh: %w", err)
		}
		s.meshes[p] = upload(m)
		log.Debug().Stringer("shape", p).Int("vertices", m.VertexCount()).Int("indices", len(m.Indices)).Msg("mesh loaded")
	}
	return nil
}

func upload(m *geometry.Mesh) *gpuMesh {
	g := &gpuMesh{indexCount: int32(len(m.Indices))}
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	stride := int32(geometry.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	return g
}

// Draw renders a loaded primitive. Unloaded primitives are skipped.
func (s *ShapeMeshes) Draw(p geometry.Primitive) {
	g, ok := s.meshes[p]
	if !ok {
		return
	}
	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Dispose deletes every vertex array and buffer.
func (s *ShapeMeshes) Dispose() {
	for p, g := range s.meshes {
		gl.DeleteVertexArrays(1, &g.vao)
		gl.DeleteBuffers(1, &g.vbo)
		gl.DeleteBuffers(1, &g.ebo)
		delete(s.meshes, p)
	}
}
