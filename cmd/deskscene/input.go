package main

import (
	"deskscene/internal/camera"
	"deskscene/internal/graphics/renderer"
	"deskscene/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, loop *RenderLoop, r *renderer.Renderer, view *camera.View, state *input.State, bindings *input.Bindings) {
	// Mouse position callback
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		view.HandleCursor(xpos, ypos)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		view.HandleScroll(yoff)
	})

	// Key events only update input state; the loop reads it once per frame.
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press, glfw.Repeat:
			bindings.HandleKey(state, input.Key(key), true)
		case glfw.Release:
			bindings.HandleKey(state, input.Key(key), false)
		}
	})

	// Regaining focus must not turn the cursor jump into a camera snap.
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if focused {
			view.ResetMouse()
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		r.UpdateViewport(fbWidth, fbHeight)
	})

	// Refresh callback (called during window resize to prevent visual glitches)
	window.SetRefreshCallback(func(w *glfw.Window) {
		loop.RefreshRender()
	})
}
