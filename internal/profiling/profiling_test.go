package profiling_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskscene/internal/profiling"
)

func TestTopNOrdersByDuration(t *testing.T) {
	profiling.ResetFrame()
	profiling.Add("scene.RenderFrame", 4*time.Millisecond)
	profiling.Add("glfw.SwapBuffers", 2*time.Millisecond)
	profiling.Add("glfw.PollEvents", 1*time.Millisecond)
	profiling.Add("scene.RenderFrame", 200*time.Microsecond)

	top := profiling.TopN(2)
	require.Len(t, top, 2)
	assert.Equal(t, "scene.RenderFrame", top[0].Name)
	assert.Equal(t, 4200*time.Microsecond, top[0].Duration)
	assert.Equal(t, "glfw.SwapBuffers", top[1].Name)

	assert.Equal(t, "scene.RenderFrame:4.2ms, glfw.SwapBuffers:2.0ms", profiling.Format(top))
	assert.Len(t, profiling.TopN(10), 3)
}

func TestSumWithPrefix(t *testing.T) {
	profiling.ResetFrame()
	profiling.Add("glfw.SwapBuffers", 2*time.Millisecond)
	profiling.Add("glfw.PollEvents", 1*time.Millisecond)
	profiling.Add("scene.RenderFrame", 5*time.Millisecond)

	assert.Equal(t, 3*time.Millisecond, profiling.SumWithPrefix("glfw."))
	assert.Zero(t, profiling.SumWithPrefix("physics."))
}

func TestResetFrame(t *testing.T) {
	profiling.Add("x", time.Millisecond)
	profiling.ResetFrame()
	assert.Empty(t, profiling.Snapshot())
}

func TestTrackRecords(t *testing.T) {
	profiling.ResetFrame()
	stop := profiling.Track("work")
	stop()
	_, ok := profiling.Snapshot()["work"]
	assert.True(t, ok)
}
