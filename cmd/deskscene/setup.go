package main

import (
	"deskscene/internal/camera"
	"deskscene/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog/log"
)

func setupWindow(ws config.WindowSettings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(ws.Width, ws.Height, ws.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, err
	}
	log.Info().Str("version", gl.GoStr(gl.GetString(gl.VERSION))).Msg("OpenGL context ready")

	if ws.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if ws.CaptureCursor {
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}

	return window, nil
}

func newView(s *config.Settings, width, height int) *camera.View {
	cam := camera.New(
		camera.Pose{
			Position: s.Camera.Position,
			Front:    s.Camera.Front,
			Up:       s.Camera.Up,
			Zoom:     s.Camera.Zoom,
		},
		camera.WithSensitivity(s.Camera.MouseSensitivity),
		camera.WithZoomRange(s.Camera.MinZoom, s.Camera.MaxZoom),
	)
	v := camera.NewView(cam, width, height)
	v.Near = s.Projection.Near
	v.Far = s.Projection.Far
	v.OrthoHalfExtent = s.Projection.OrthoHalfExtent
	v.MovementSpeed = s.Camera.MovementSpeed
	return v
}
