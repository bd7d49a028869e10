package backend

import (
	"github.com/valerio/go-piezo/piezo/debug"
	"github.com/valerio/go-piezo/piezo/input/action"
	"github.com/valerio/go-piezo/piezo/input/event"
)

// Backend is a front end for the console: it shows the speaker state and
// turns platform input into actions.
type Backend interface {
	// Init configures the backend. It is required before calling Update.
	Init(config BackendConfig) error

	// Update shows the status of the frame just run and returns the input
	// events collected since the last call.
	Update(status *debug.Status) ([]InputEvent, error)

	// Cleanup resources when shutting down
	Cleanup() error
}

// BackendConfig holds configuration for backends
type BackendConfig struct {
	Title     string
	FPS       int
	Callbacks BackendCallbacks // Callbacks for backend communication
}

// BackendCallbacks allows backends to communicate with the console
type BackendCallbacks struct {
	OnQuit func() // Backend requests shutdown (e.g. a signal)
}

// InputEvent is an action together with how its input changed.
type InputEvent struct {
	Action action.Action
	Type   event.Type
}
