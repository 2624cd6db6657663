package input

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionResetCamera
	ActionToggleProjection
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	"move_forward",
	"move_backward",
	"move_left",
	"move_right",
	"move_up",
	"move_down",
	"reset_camera",
	"toggle_projection",
	"quit",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// State tracks which actions are held and which changed this frame.
// All access happens on the frame thread, so there is no locking.
type State struct {
	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Previous frame state (for edge detection)
	prevState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

func NewState() *State {
	return &State{}
}

// Press marks an action as held. Repeated presses while held are not edges.
func (s *State) Press(action Action) {
	s.set(action, true)
}

// Release marks an action as no longer held.
func (s *State) Release(action Action) {
	s.set(action, false)
}

func (s *State) set(action Action, pressed bool) {
	if action < 0 || action >= ActionCount {
		return
	}
	if pressed && !s.currentState[action] {
		s.justPressed[action] = true
	}
	if !pressed && s.currentState[action] {
		s.justReleased[action] = true
	}
	s.currentState[action] = pressed
}

// PostUpdate must be called at the end of each frame to update edge detection states
func (s *State) PostUpdate() {
	for i := Action(0); i < ActionCount; i++ {
		s.justPressed[i] = false
		s.justReleased[i] = false
		s.prevState[i] = s.currentState[i]
	}
}

// IsActive returns true if the action is currently being held down
func (s *State) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return s.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (s *State) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return s.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (s *State) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return s.justReleased[action]
}

// WasActive reports the held state at the end of the previous frame.
func (s *State) WasActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return s.prevState[action]
}
