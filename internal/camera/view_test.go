package camera_test

import (
	"testing"

	"deskscene/internal/camera"
	"deskscene/internal/input"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestFirstMouseSampleIsReference(t *testing.T) {
	cam := camera.New(camera.DefaultPose)
	view := camera.NewView(cam, 1000, 800)
	yaw, pitch := cam.Yaw, cam.Pitch

	view.HandleCursor(731, 12)
	assert.Equal(t, yaw, cam.Yaw)
	assert.Equal(t, pitch, cam.Pitch)

	view.HandleCursor(741, 2)
	assert.InDelta(t, yaw+1, cam.Yaw, eps)
	assert.InDelta(t, pitch+1, cam.Pitch, eps)

	view.ResetMouse()
	view.HandleCursor(0, 0)
	assert.InDelta(t, yaw+1, cam.Yaw, eps, "re-captured cursor does not jump")
}

func TestToggleProjectionTwiceRestoresMatrix(t *testing.T) {
	view := camera.NewView(camera.New(camera.DefaultPose), 1000, 800)
	before := view.ProjectionMatrix()

	view.ToggleProjection()
	assert.Equal(t, camera.Orthographic, view.Mode)
	assert.NotEqual(t, before, view.ProjectionMatrix())

	view.ToggleProjection()
	assert.Equal(t, camera.Perspective, view.Mode)
	assert.Equal(t, before, view.ProjectionMatrix())
}

func TestOrthographicExtent(t *testing.T) {
	view := camera.NewView(camera.New(camera.DefaultPose), 1000, 800)
	view.ToggleProjection()

	p := view.ProjectionMatrix()
	assert.Equal(t, mgl32.Ortho(-10, 10, -10, 10, 0.1, 100), p)
}

func TestUpdateTogglesOncePerPress(t *testing.T) {
	view := camera.NewView(camera.New(camera.DefaultPose), 1000, 800)
	state := input.NewState()

	state.Press(input.ActionToggleProjection)
	for frame := 0; frame < 5; frame++ {
		state.Press(input.ActionToggleProjection) // key still held
		view.Update(0.016, state)
		state.PostUpdate()
	}
	assert.Equal(t, camera.Orthographic, view.Mode)

	state.Release(input.ActionToggleProjection)
	view.Update(0.016, state)
	state.PostUpdate()
	state.Press(input.ActionToggleProjection)
	view.Update(0.016, state)
	assert.Equal(t, camera.Perspective, view.Mode)
}

func TestUpdateMovesByDeltaTime(t *testing.T) {
	pose := camera.Pose{Front: mgl32.Vec3{0, 0, -1}, Up: mgl32.Vec3{0, 1, 0}, Zoom: 45}
	view := camera.NewView(camera.New(pose), 100, 100)
	state := input.NewState()

	state.Press(input.ActionMoveForward)
	view.Update(0.5, state)

	assertVecNear(t, mgl32.Vec3{0, 0, -2.5}, view.Eye())
}

func TestUpdateReset(t *testing.T) {
	view := camera.NewView(camera.New(camera.DefaultPose), 100, 100)
	state := input.NewState()

	state.Press(input.ActionMoveUp)
	view.Update(1, state)
	state.PostUpdate()
	state.Release(input.ActionMoveUp)
	state.Press(input.ActionResetCamera)
	view.Update(1, state)

	assert.Equal(t, camera.DefaultPose.Position, view.Eye())
}

func TestAspectRatio(t *testing.T) {
	view := camera.NewView(camera.New(camera.DefaultPose), 1000, 800)
	assert.Equal(t, float32(1.25), view.AspectRatio())

	view.SetViewport(0, 0)
	assert.Equal(t, float32(1.25), view.AspectRatio(), "zero size (minimized) is ignored")

	view.SetViewport(400, 400)
	assert.Equal(t, float32(1), view.AspectRatio())
}
