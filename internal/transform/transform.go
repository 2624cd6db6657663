// Package transform builds model matrices for scene objects.
package transform

import "github.com/go-gl/mathgl/mgl32"

// ComposeModelMatrix returns T * Rx * Ry * Rz * S. Applied to a column
// vector this scales first, then rotates about Z, Y and X, then translates.
// Rotation angles are in degrees. The order is fixed: objects with more than
// one non-zero rotation axis depend on it.
func ComposeModelMatrix(scale, rotationDegrees, position mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDegrees.X()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDegrees.Y()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDegrees.Z()))
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())

	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}
