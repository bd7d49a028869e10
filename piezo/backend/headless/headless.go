package headless

import (
	"log/slog"
	"os"

	"github.com/valerio/go-piezo/piezo/backend"
	"github.com/valerio/go-piezo/piezo/debug"
	"github.com/valerio/go-piezo/piezo/input/action"
	"github.com/valerio/go-piezo/piezo/input/event"
)

// Backend runs the console without a display, for batch rendering and
// tests. It quits after a fixed number of frames or, with no frame limit,
// when the tune has finished.
type Backend struct {
	config         backend.BackendConfig
	frameCount     int
	maxFrames      int
	statusInterval int
}

// New returns a headless backend. maxFrames of 0 runs until the tune is
// done; statusInterval of 0 disables the periodic status log.
func New(maxFrames, statusInterval int) *Backend {
	return &Backend{
		maxFrames:      maxFrames,
		statusInterval: statusInterval,
	}
}

func (h *Backend) Init(config backend.BackendConfig) error {
	h.config = config

	slog.Info("Running headless mode",
		"frames", h.maxFrames,
		"status_interval", h.statusInterval)

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}

// Update counts the frame, logs progress and requests a quit when done.
func (h *Backend) Update(status *debug.Status) ([]backend.InputEvent, error) {
	h.frameCount++

	if h.statusInterval > 0 && h.frameCount%h.statusInterval == 0 {
		logStatus(h.frameCount, status)
	}

	done := h.maxFrames > 0 && h.frameCount >= h.maxFrames
	if h.maxFrames == 0 && status != nil && status.TuneDone {
		done = true
	}
	if !done {
		return nil, nil
	}

	slog.Info("Headless execution completed", "frames", h.frameCount, "seconds", h.seconds())
	return []backend.InputEvent{{Action: action.Quit, Type: event.Press}}, nil
}

func (h *Backend) Cleanup() error {
	return nil
}

// seconds returns the simulated time covered by the frames seen so far.
func (h *Backend) seconds() float64 {
	if h.config.FPS <= 0 {
		return 0
	}
	return float64(h.frameCount) / float64(h.config.FPS)
}

// Frames returns the number of frames seen so far.
func (h *Backend) Frames() int {
	return h.frameCount
}

func logStatus(frame int, status *debug.Status) {
	if status == nil {
		return
	}
	a, b := status.Channels.A, status.Channels.B
	slog.Info("Speaker status",
		"frame", frame,
		"muted", status.Muted,
		"a_sounding", a.Sounding, "a_note", a.Note, "a_hz", a.Frequency,
		"b_sounding", b.Sounding, "b_note", b.Note, "b_hz", b.Frequency)
}
