package main

import (
	"time"

	"deskscene/internal/camera"
	renderer "deskscene/internal/graphics/renderer"
	"deskscene/internal/input"
	"deskscene/internal/profiling"
	"deskscene/internal/timing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog/log"
)

// RenderLoop advances the camera and draws one frame per iteration until the
// window is asked to close.
type RenderLoop struct {
	window   *glfw.Window
	renderer *renderer.Renderer
	view     *camera.View
	input    *input.State

	clock      *timing.FrameClock
	fpsLimiter *timing.FPSLimiter

	frames           int
	lastFPSCheckTime time.Time
}

func NewRenderLoop(window *glfw.Window, r *renderer.Renderer, view *camera.View, in *input.State, limiter *timing.FPSLimiter) *RenderLoop {
	return &RenderLoop{
		window:           window,
		renderer:         r,
		view:             view,
		input:            in,
		clock:            timing.NewFrameClock(),
		fpsLimiter:       limiter,
		lastFPSCheckTime: time.Now(),
	}
}

// Run blocks until the window closes.
func (l *RenderLoop) Run() {
	for !l.window.ShouldClose() {
		l.tick()
	}
}

func (l *RenderLoop) tick() {
	profiling.ResetFrame()
	dt := l.clock.Tick()

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	if l.input.JustPressed(input.ActionQuit) {
		l.window.SetShouldClose(true)
	}
	func() { defer profiling.Track("camera.Update")(); l.view.Update(dt, l.input) }()

	l.renderer.Render(dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); l.window.SwapBuffers() }()

	// Clear edge flags at end of frame
	l.input.PostUpdate()

	l.frames++
	if time.Since(l.lastFPSCheckTime) >= time.Second {
		l.report()
	}

	l.fpsLimiter.Wait()
}

func (l *RenderLoop) report() {
	log.Debug().Int("fps", l.frames).Stringer("projection", l.view.Mode).Msg("frame rate")
	if ev := log.Debug(); ev.Enabled() {
		profiling.Log(ev, 5)
	}
	l.frames = 0
	l.lastFPSCheckTime = time.Now()

	if limit := l.fpsLimiter.Limit(); limit > 0 {
		target := time.Second / time.Duration(limit)
		if spent := profiling.SumWithPrefix("renderer."); spent > target {
			log.Warn().
				Dur("render", spent).
				Dur("target", target).
				Msg("frame rendering slower than the FPS limit")
		}
	}
}

// RefreshRender redraws without advancing the camera (used during window resize).
func (l *RenderLoop) RefreshRender() {
	l.renderer.Render(0)
	l.window.SwapBuffers()
}
