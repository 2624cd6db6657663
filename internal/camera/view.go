package camera

import (
	"deskscene/internal/input"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"
)

// ProjectionMode selects the projection matrix.
type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
)

func (m ProjectionMode) String() string {
	if m == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

const (
	DefaultNear            = 0.1
	DefaultFar             = 100.0
	DefaultOrthoHalfExtent = 10.0
	DefaultMovementSpeed   = 5.0
)

// Controls is the per-frame input the view reads. input.State satisfies it.
type Controls interface {
	IsActive(action input.Action) bool
	JustPressed(action input.Action) bool
}

// View owns the camera and turns raw input into camera changes and
// view/projection matrices.
type View struct {
	Camera *Camera

	Mode            ProjectionMode
	Width           int
	Height          int
	Near            float32
	Far             float32
	OrthoHalfExtent float32

	// MovementSpeed is world units per second of held movement key.
	MovementSpeed float32

	firstMouse bool
	lastX      float64
	lastY      float64
}

func NewView(cam *Camera, width, height int) *View {
	return &View{
		Camera:          cam,
		Mode:            Perspective,
		Width:           width,
		Height:          height,
		Near:            DefaultNear,
		Far:             DefaultFar,
		OrthoHalfExtent: DefaultOrthoHalfExtent,
		MovementSpeed:   DefaultMovementSpeed,
		firstMouse:      true,
	}
}

// SetViewport updates the aspect ratio source.
func (v *View) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.Width = width
	v.Height = height
}

func (v *View) AspectRatio() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// HandleCursor feeds an absolute cursor position. The first sample after
// construction or ResetMouse only sets the reference point.
func (v *View) HandleCursor(xpos, ypos float64) {
	if v.firstMouse {
		v.lastX = xpos
		v.lastY = ypos
		v.firstMouse = false
		return
	}

	xoffset := xpos - v.lastX
	yoffset := v.lastY - ypos // window y grows downwards
	v.lastX = xpos
	v.lastY = ypos

	v.Camera.ProcessMouseMovement(float32(xoffset), float32(yoffset))
}

// ResetMouse makes the next cursor sample a new reference point, e.g. after
// the cursor was released and captured again.
func (v *View) ResetMouse() {
	v.firstMouse = true
}

func (v *View) HandleScroll(yoffset float64) {
	v.Camera.ProcessMouseScroll(float32(yoffset))
}

func (v *View) ToggleProjection() {
	if v.Mode == Perspective {
		v.Mode = Orthographic
	} else {
		v.Mode = Perspective
	}
	log.Info().Stringer("mode", v.Mode).Msg("projection mode changed")
}

// Update applies one frame of input. dt is the wall-clock time since the
// previous frame in seconds.
func (v *View) Update(dt float64, in Controls) {
	if in.JustPressed(input.ActionResetCamera) {
		v.Camera.Reset()
		log.Info().Msg("camera reset to default position")
	}
	if in.JustPressed(input.ActionToggleProjection) {
		v.ToggleProjection()
	}

	distance := float32(dt) * v.MovementSpeed
	moves := [...]struct {
		action input.Action
		dir    Direction
	}{
		{input.ActionMoveForward, Forward},
		{input.ActionMoveBackward, Backward},
		{input.ActionMoveLeft, Left},
		{input.ActionMoveRight, Right},
		{input.ActionMoveUp, Up},
		{input.ActionMoveDown, Down},
	}
	for _, m := range moves {
		if in.IsActive(m.action) {
			v.Camera.ProcessKeyboard(m.dir, distance)
		}
	}
}

func (v *View) ViewMatrix() mgl32.Mat4 {
	return v.Camera.ViewMatrix()
}

func (v *View) ProjectionMatrix() mgl32.Mat4 {
	if v.Mode == Orthographic {
		h := v.OrthoHalfExtent
		return mgl32.Ortho(-h, h, -h, h, v.Near, v.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(v.Camera.Zoom), v.AspectRatio(), v.Near, v.Far)
}

// Eye is the camera position in world space.
func (v *View) Eye() mgl32.Vec3 {
	return v.Camera.Position
}
