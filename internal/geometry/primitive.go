package geometry

import (
	"fmt"
	"strings"
)

// Primitive is one of the basic solids a scene object can be drawn with.
type Primitive int

const (
	Box Primitive = iota
	Plane
	Cylinder
	Cone
	Sphere
	Prism
	Torus
	PrimitiveCount
)

var primitiveNames = [PrimitiveCount]string{"box", "plane", "cylinder", "cone", "sphere", "prism", "torus"}

func (p Primitive) String() string {
	if p < 0 || p >= PrimitiveCount {
		return fmt.Sprintf("primitive(%d)", int(p))
	}
	return primitiveNames[p]
}

// ParsePrimitive accepts a primitive name in any letter case.
func ParsePrimitive(name string) (Primitive, error) {
	for i, n := range primitiveNames {
		if strings.EqualFold(n, name) {
			return Primitive(i), nil
		}
	}
	return 0, fmt.Errorf("geometry: unknown primitive %q", name)
}

func (p Primitive) MarshalText() ([]byte, error) {
	if p < 0 || p >= PrimitiveCount {
		return nil, fmt.Errorf("geometry: invalid primitive %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Primitive) UnmarshalText(b []byte) error {
	v, err := ParsePrimitive(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// All lists every primitive in declaration order.
func All() []Primitive {
	out := make([]Primitive, PrimitiveCount)
	for i := range out {
		out[i] = Primitive(i)
	}
	return out
}

// Generate tessellates p with the default resolution.
func Generate(p Primitive) (*Mesh, error) {
	switch p {
	case Box:
		return NewBox(), nil
	case Plane:
		return NewPlane(), nil
	case Cylinder:
		return NewCylinder(36), nil
	case Cone:
		return NewCone(36), nil
	case Sphere:
		return NewSphere(18, 36), nil
	case Prism:
		return NewPrism(), nil
	case Torus:
		return NewTorus(1, 0.2, 48, 16), nil
	}
	return nil, fmt.Errorf("geometry: invalid primitive %d", int(p))
}
