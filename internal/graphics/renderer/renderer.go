package renderer

import (
	"deskscene/internal/camera"
	"deskscene/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ClearColor is the background behind the scene.
var ClearColor = mgl32.Vec4{0.1, 0.1, 0.1, 1.0}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	view        *camera.View
}

// NewRenderer configures GL state and initializes the renderables in order.
func NewRenderer(view *camera.View, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{renderables: rs, view: view}
	for i, rr := range rs {
		if err := rr.Init(); err != nil {
			// Dispose must tolerate a partially initialized renderable.
			for j := i; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
		rr.SetViewport(view.Width, view.Height)
	}
	return r, nil
}

// Render clears the frame and renders every feature from the current view.
func (r *Renderer) Render(dt float64) {
	defer profiling.Track("renderer.Render")()
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		DT:   dt,
		View: r.view.ViewMatrix(),
		Proj: r.view.ProjectionMatrix(),
		Eye:  r.view.Eye(),
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport resizes the GL viewport, the projection and the renderables.
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.view.SetViewport(width, height)
	for _, rr := range r.renderables {
		rr.SetViewport(width, height)
	}
}
