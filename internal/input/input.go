package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical demo command, not a physical key
type Action int

const (
	ActionQuit Action = iota
	ActionPause
	// ActionResume is what any key without a binding does.
	ActionResume
	ActionViewerIn
	ActionViewerOut
	ActionViewerLeft
	ActionViewerRight
	ActionViewerUp
	ActionViewerDown
	ActionToggleWireframe
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	"quit", "pause", "resume",
	"viewer-in", "viewer-out", "viewer-left", "viewer-right", "viewer-up", "viewer-down",
	"toggle-wireframe",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// repeats reports whether holding the key down keeps firing the action.
func (a Action) repeats() bool {
	return a >= ActionViewerIn && a <= ActionViewerDown
}

// InputManager maps physical keys to actions and queues them until the frame
// loop drains them. Key callbacks and the loop may run on different goroutines.
type InputManager struct {
	mu sync.Mutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	pending []Action
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeySpace, ActionPause)
	im.BindKey(glfw.KeyPageUp, ActionViewerIn)
	im.BindKey(glfw.KeyPageDown, ActionViewerOut)
	im.BindKey(glfw.KeyLeft, ActionViewerLeft)
	im.BindKey(glfw.KeyA, ActionViewerLeft)
	im.BindKey(glfw.KeyRight, ActionViewerRight)
	im.BindKey(glfw.KeyD, ActionViewerRight)
	im.BindKey(glfw.KeyUp, ActionViewerUp)
	im.BindKey(glfw.KeyW, ActionViewerUp)
	im.BindKey(glfw.KeyDown, ActionViewerDown)
	im.BindKey(glfw.KeyS, ActionViewerDown)
	im.BindKey(glfw.KeyF, ActionToggleWireframe)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action (e.g., WASD and arrow keys)
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key. The key then resumes the
// animation like any other unbound key.
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.keyToActions, key)
}

// HandleKeyEvent queues the actions for a key event. Presses fire every bound
// action; auto-repeat fires only viewer moves; releases fire nothing.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	if action == glfw.Release {
		return
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	actions, bound := im.keyToActions[key]
	if !bound {
		if action == glfw.Press {
			im.pending = append(im.pending, ActionResume)
		}
		return
	}
	for _, act := range actions {
		if action == glfw.Press || act.repeats() {
			im.pending = append(im.pending, act)
		}
	}
}

// SetKeyCallback sets up the GLFW key callback for this input manager
// This should be called once during initialization
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// Drain returns the actions queued since the last call, oldest first.
func (im *InputManager) Drain() []Action {
	im.mu.Lock()
	defer im.mu.Unlock()

	out := im.pending
	im.pending = nil
	return out
}
