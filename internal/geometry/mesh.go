// Package geometry tessellates the primitive solids used by the scene.
//
// Vertices are interleaved as position (3), normal (3), texture coordinate
// (2). Triangles wind counter-clockwise when seen from outside.
package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the stride of Mesh.Vertices in floats.
const FloatsPerVertex = 8

type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

func (m *Mesh) VertexCount() int { return len(m.Vertices) / FloatsPerVertex }

func (m *Mesh) Position(i int) mgl32.Vec3 {
	o := i * FloatsPerVertex
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

func (m *Mesh) Normal(i int) mgl32.Vec3 {
	o := i*FloatsPerVertex + 3
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

func (m *Mesh) vertex(p, n mgl32.Vec3, u, v float32) uint32 {
	idx := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, p[0], p[1], p[2], n[0], n[1], n[2], u, v)
	return idx
}

// tri appends a triangle, flipping it if needed so its winding agrees with
// the vertex normals.
func (m *Mesh) tri(a, b, c uint32) {
	pa, pb, pc := m.Position(int(a)), m.Position(int(b)), m.Position(int(c))
	face := pb.Sub(pa).Cross(pc.Sub(pa))
	n := m.Normal(int(a)).Add(m.Normal(int(b))).Add(m.Normal(int(c)))
	if face.Dot(n) < 0 {
		b, c = c, b
	}
	m.Indices = append(m.Indices, a, b, c)
}

func (m *Mesh) quad(a, b, c, d uint32) {
	m.tri(a, b, c)
	m.tri(a, c, d)
}

// face adds a flat rectangle centered at center spanning ±u and ±v.
func (m *Mesh) face(center, u, v mgl32.Vec3) {
	n := u.Cross(v).Normalize()
	a := m.vertex(center.Sub(u).Sub(v), n, 0, 0)
	b := m.vertex(center.Add(u).Sub(v), n, 1, 0)
	c := m.vertex(center.Add(u).Add(v), n, 1, 1)
	d := m.vertex(center.Sub(u).Add(v), n, 0, 1)
	m.quad(a, b, c, d)
}

// NewBox is a unit cube centered at the origin.
func NewBox() *Mesh {
	m := &Mesh{}
	x, y, z := mgl32.Vec3{0.5, 0, 0}, mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{0, 0, 0.5}
	m.face(z, x, y)                 // front
	m.face(z.Mul(-1), x.Mul(-1), y) // back
	m.face(x, z.Mul(-1), y)         // right
	m.face(x.Mul(-1), z, y)         // left
	m.face(y, x, z.Mul(-1))         // top
	m.face(y.Mul(-1), x, z)         // bottom
	return m
}

// NewPlane is a 2x2 square on the XZ plane facing +Y.
func NewPlane() *Mesh {
	m := &Mesh{}
	m.face(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1})
	return m
}

// NewCylinder has radius 1, its base on y=0 and its top on y=1.
func NewCylinder(slices int) *Mesh {
	m := &Mesh{}
	for i := 0; i < slices; i++ {
		t0, t1 := ringAngle(i, slices), ringAngle(i+1, slices)
		u0, u1 := float32(i)/float32(slices), float32(i+1)/float32(slices)
		n0 := mgl32.Vec3{math32.Cos(t0), 0, math32.Sin(t0)}
		n1 := mgl32.Vec3{math32.Cos(t1), 0, math32.Sin(t1)}

		b0 := m.vertex(n0, n0, u0, 0)
		b1 := m.vertex(n1, n1, u1, 0)
		t1v := m.vertex(n1.Add(mgl32.Vec3{0, 1, 0}), n1, u1, 1)
		t0v := m.vertex(n0.Add(mgl32.Vec3{0, 1, 0}), n0, u0, 1)
		m.quad(b0, b1, t1v, t0v)
	}
	m.disc(0, mgl32.Vec3{0, -1, 0}, slices)
	m.disc(1, mgl32.Vec3{0, 1, 0}, slices)
	return m
}

// NewCone has a radius 1 base on y=0 and its apex at y=1.
func NewCone(slices int) *Mesh {
	m := &Mesh{}
	for i := 0; i < slices; i++ {
		t0, t1 := ringAngle(i, slices), ringAngle(i+1, slices)
		tm := (t0 + t1) / 2
		u0, u1 := float32(i)/float32(slices), float32(i+1)/float32(slices)
		r0 := mgl32.Vec3{math32.Cos(t0), 0, math32.Sin(t0)}
		r1 := mgl32.Vec3{math32.Cos(t1), 0, math32.Sin(t1)}

		// Slant normal for equal radius and height.
		n0 := mgl32.Vec3{r0.X(), 1, r0.Z()}.Normalize()
		n1 := mgl32.Vec3{r1.X(), 1, r1.Z()}.Normalize()
		na := mgl32.Vec3{math32.Cos(tm), 1, math32.Sin(tm)}.Normalize()

		a := m.vertex(r0, n0, u0, 0)
		b := m.vertex(r1, n1, u1, 0)
		apex := m.vertex(mgl32.Vec3{0, 1, 0}, na, (u0+u1)/2, 1)
		m.tri(a, b, apex)
	}
	m.disc(0, mgl32.Vec3{0, -1, 0}, slices)
	return m
}

// NewSphere has radius 1 and is centered at the origin.
func NewSphere(stacks, slices int) *Mesh {
	m := &Mesh{}
	for j := 0; j <= stacks; j++ {
		phi := math32.Pi * float32(j) / float32(stacks)
		for i := 0; i <= slices; i++ {
			theta := ringAngle(i, slices)
			p := mgl32.Vec3{
				math32.Sin(phi) * math32.Cos(theta),
				math32.Cos(phi),
				math32.Sin(phi) * math32.Sin(theta),
			}
			m.vertex(p, p, float32(i)/float32(slices), 1-float32(j)/float32(stacks))
		}
	}
	row := uint32(slices + 1)
	for j := 0; j < stacks; j++ {
		for i := 0; i < slices; i++ {
			a := uint32(j)*row + uint32(i)
			b := a + 1
			c := a + row + 1
			d := a + row
			if j != 0 {
				m.tri(a, b, c)
			}
			if j != stacks-1 {
				m.tri(a, c, d)
			}
		}
	}
	return m
}

// NewPrism is a triangular prism one unit tall, wide and deep, centered at
// the origin, with its triangular faces facing ±Z.
func NewPrism() *Mesh {
	m := &Mesh{}
	corners := [3]mgl32.Vec3{{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {0, 0.5, 0}}
	front, back := mgl32.Vec3{0, 0, 0.5}, mgl32.Vec3{0, 0, -0.5}

	for _, side := range []struct {
		offset mgl32.Vec3
		n      mgl32.Vec3
	}{{front, mgl32.Vec3{0, 0, 1}}, {back, mgl32.Vec3{0, 0, -1}}} {
		a := m.vertex(corners[0].Add(side.offset), side.n, 0, 0)
		b := m.vertex(corners[1].Add(side.offset), side.n, 1, 0)
		c := m.vertex(corners[2].Add(side.offset), side.n, 0.5, 1)
		m.tri(a, b, c)
	}

	for i := 0; i < 3; i++ {
		p, q := corners[i], corners[(i+1)%3]
		edge := q.Sub(p)
		n := mgl32.Vec3{edge.Y(), -edge.X(), 0}.Normalize()
		a := m.vertex(p.Add(front), n, 0, 0)
		b := m.vertex(q.Add(front), n, 1, 0)
		c := m.vertex(q.Add(back), n, 1, 1)
		d := m.vertex(p.Add(back), n, 0, 1)
		m.quad(a, b, c, d)
	}
	return m
}

// NewTorus lies on the XY plane around the Z axis.
func NewTorus(mainRadius, tubeRadius float32, mainSegments, tubeSegments int) *Mesh {
	m := &Mesh{}
	for i := 0; i <= mainSegments; i++ {
		u := ringAngle(i, mainSegments)
		radial := mgl32.Vec3{math32.Cos(u), math32.Sin(u), 0}
		center := radial.Mul(mainRadius)
		for j := 0; j <= tubeSegments; j++ {
			v := ringAngle(j, tubeSegments)
			n := radial.Mul(math32.Cos(v)).Add(mgl32.Vec3{0, 0, math32.Sin(v)})
			p := center.Add(n.Mul(tubeRadius))
			m.vertex(p, n, float32(i)/float32(mainSegments), float32(j)/float32(tubeSegments))
		}
	}
	row := uint32(tubeSegments + 1)
	for i := 0; i < mainSegments; i++ {
		for j := 0; j < tubeSegments; j++ {
			a := uint32(i)*row + uint32(j)
			m.quad(a, a+row, a+row+1, a+1)
		}
	}
	return m
}

// disc adds a flat cap of radius 1 at height y.
func (m *Mesh) disc(y float32, n mgl32.Vec3, slices int) {
	center := m.vertex(mgl32.Vec3{0, y, 0}, n, 0.5, 0.5)
	for i := 0; i < slices; i++ {
		t0, t1 := ringAngle(i, slices), ringAngle(i+1, slices)
		c0, s0 := math32.Cos(t0), math32.Sin(t0)
		c1, s1 := math32.Cos(t1), math32.Sin(t1)
		a := m.vertex(mgl32.Vec3{c0, y, s0}, n, 0.5+c0/2, 0.5+s0/2)
		b := m.vertex(mgl32.Vec3{c1, y, s1}, n, 0.5+c1/2, 0.5+s1/2)
		m.tri(center, a, b)
	}
}

func ringAngle(i, n int) float32 {
	return 2 * math32.Pi * float32(i) / float32(n)
}
