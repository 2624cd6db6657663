package input_test

import (
	"testing"

	"deskscene/internal/input"

	"github.com/stretchr/testify/assert"
)

func TestHeldKeyFiresOnce(t *testing.T) {
	s := input.NewState()
	b := input.DefaultBindings()

	b.HandleKey(s, input.KeyP, true)
	assert.True(t, s.JustPressed(input.ActionToggleProjection))
	s.PostUpdate()

	// Key repeat while held.
	b.HandleKey(s, input.KeyP, true)
	assert.False(t, s.JustPressed(input.ActionToggleProjection))
	assert.True(t, s.IsActive(input.ActionToggleProjection))
	assert.True(t, s.WasActive(input.ActionToggleProjection))
	s.PostUpdate()

	b.HandleKey(s, input.KeyP, false)
	assert.True(t, s.JustReleased(input.ActionToggleProjection))
	s.PostUpdate()

	b.HandleKey(s, input.KeyP, true)
	assert.True(t, s.JustPressed(input.ActionToggleProjection), "a new physical press fires again")
}

func TestUnboundKeyIgnored(t *testing.T) {
	s := input.NewState()
	b := input.DefaultBindings()
	b.HandleKey(s, input.Key(999), true)

	for a := input.Action(0); a < input.ActionCount; a++ {
		assert.False(t, s.IsActive(a), a.String())
	}
}

func TestRebind(t *testing.T) {
	s := input.NewState()
	b := input.DefaultBindings()
	b.Unbind(input.KeyW)
	b.Bind(input.KeyO, input.ActionMoveForward)

	b.HandleKey(s, input.KeyW, true)
	assert.False(t, s.IsActive(input.ActionMoveForward))

	b.HandleKey(s, input.KeyO, true)
	assert.True(t, s.IsActive(input.ActionMoveForward))
	assert.True(t, s.IsActive(input.ActionResetCamera))
}

func TestOutOfRangeAction(t *testing.T) {
	s := input.NewState()
	s.Press(input.ActionCount)
	assert.False(t, s.IsActive(input.ActionCount))
	assert.Equal(t, "unknown", input.Action(-1).String())
	assert.Equal(t, "quit", input.ActionQuit.String())
}
