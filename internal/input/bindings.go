package input

// Key is a physical key code. The values are GLFW key codes, which keeps
// this package free of the cgo GLFW dependency.
type Key int

const (
	KeyW      Key = 87
	KeyA      Key = 65
	KeyS      Key = 83
	KeyD      Key = 68
	KeyQ      Key = 81
	KeyE      Key = 69
	KeyO      Key = 79
	KeyP      Key = 80
	KeyEscape Key = 256
)

// Bindings maps keys to actions. One key can drive several actions.
type Bindings struct {
	keyToActions map[Key][]Action
}

// DefaultBindings returns the viewer's key layout.
func DefaultBindings() *Bindings {
	b := &Bindings{keyToActions: make(map[Key][]Action)}
	b.Bind(KeyW, ActionMoveForward)
	b.Bind(KeyS, ActionMoveBackward)
	b.Bind(KeyA, ActionMoveLeft)
	b.Bind(KeyD, ActionMoveRight)
	b.Bind(KeyQ, ActionMoveUp)
	b.Bind(KeyE, ActionMoveDown)
	b.Bind(KeyO, ActionResetCamera)
	b.Bind(KeyP, ActionToggleProjection)
	b.Bind(KeyEscape, ActionQuit)
	return b
}

// Bind binds a physical key to a logical action
func (b *Bindings) Bind(key Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	if b.keyToActions == nil {
		b.keyToActions = make(map[Key][]Action)
	}
	b.keyToActions[key] = append(b.keyToActions[key], action)
}

// Unbind removes all action bindings for a key
func (b *Bindings) Unbind(key Key) {
	delete(b.keyToActions, key)
}

// HandleKey applies a key event to s. pressed is true for press and repeat.
func (b *Bindings) HandleKey(s *State, key Key, pressed bool) {
	for _, act := range b.keyToActions[key] {
		if pressed {
			s.Press(act)
		} else {
			s.Release(act)
		}
	}
}
