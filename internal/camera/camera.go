// Package camera implements the free-fly viewer camera and the view state
// (mouse tracking, projection mode) that drives it each frame.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction of a keyboard movement step.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

const (
	DefaultSensitivity = 0.1
	DefaultMinZoom     = 1.0
	DefaultMaxZoom     = 90.0

	// MaxPitch keeps the front vector away from the world up axis, where
	// the look-at basis degenerates and the view flips.
	MaxPitch = 89.0
)

// Pose is the state Reset returns the camera to.
type Pose struct {
	Position mgl32.Vec3 `yaml:"position"`
	Front    mgl32.Vec3 `yaml:"front"`
	Up       mgl32.Vec3 `yaml:"up"`
	Zoom     float32    `yaml:"zoom"`
}

// DefaultPose looks down at the desk from above and in front of it.
var DefaultPose = Pose{
	Position: mgl32.Vec3{0, 5, 12},
	Front:    mgl32.Vec3{0, -0.5, -2},
	Up:       mgl32.Vec3{0, 1, 0},
	Zoom:     80,
}

// Camera is a yaw/pitch free camera. Front, Right and Up are always derived
// from Yaw and Pitch, so orientation state never goes out of sync.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32 // degrees
	Pitch float32 // degrees
	Zoom  float32 // vertical field of view in degrees

	MouseSensitivity float32
	MinZoom          float32
	MaxZoom          float32

	home Pose
}

type Option func(*Camera)

func WithSensitivity(s float32) Option {
	return func(c *Camera) { c.MouseSensitivity = s }
}

func WithZoomRange(min, max float32) Option {
	return func(c *Camera) {
		c.MinZoom = min
		c.MaxZoom = max
	}
}

// New creates a camera placed at home.
func New(home Pose, options ...Option) *Camera {
	c := &Camera{
		WorldUp:          mgl32.Vec3{0, 1, 0},
		MouseSensitivity: DefaultSensitivity,
		MinZoom:          DefaultMinZoom,
		MaxZoom:          DefaultMaxZoom,
		home:             home,
	}
	for _, option := range options {
		option(c)
	}
	c.Reset()
	return c
}

// Home returns the pose Reset restores.
func (c *Camera) Home() Pose { return c.home }

// Reset restores position, orientation and zoom to the home pose. Yaw and
// pitch are derived from the home front vector, so later mouse movement
// continues from the restored orientation.
func (c *Camera) Reset() {
	c.Position = c.home.Position
	if c.home.Up.Len() > 0 {
		c.WorldUp = c.home.Up.Normalize()
	}

	front := c.home.Front
	if front.Len() == 0 {
		front = mgl32.Vec3{0, 0, -1}
	}
	front = front.Normalize()
	c.Yaw = mgl32.RadToDeg(math32.Atan2(front.Z(), front.X()))
	c.Pitch = clamp(mgl32.RadToDeg(math32.Asin(front.Y())), -MaxPitch, MaxPitch)

	c.Zoom = clamp(c.home.Zoom, c.MinZoom, c.MaxZoom)
	c.updateVectors()
}

// ProcessKeyboard moves the camera distance units. Forward/Backward follow
// the front vector, Left/Right the right vector, Up/Down the world up axis.
func (c *Camera) ProcessKeyboard(dir Direction, distance float32) {
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(distance))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(distance))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(distance))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(distance))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(distance))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(distance))
	}
}

// ProcessMouseMovement turns the camera by pixel offsets. yOffset is
// positive when the mouse moves up.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity
	c.Pitch = clamp(c.Pitch, -MaxPitch, MaxPitch)
	c.updateVectors()
}

// ProcessMouseScroll zooms in for positive offsets.
func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.Zoom = clamp(c.Zoom-yOffset, c.MinZoom, c.MaxZoom)
}

// ViewMatrix returns the look-at matrix for the current pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	c.Front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
