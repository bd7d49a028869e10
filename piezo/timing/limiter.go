package timing

import "time"

// DefaultFPS is the frame rate games on the console usually run at, and so
// the rate Tick is usually called at.
const DefaultFPS = 60

// Limiter paces the frame loop in real time.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}

// FrameDuration returns the duration of a single frame at fps.
func FrameDuration(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// TicksFor converts a wall clock duration to a whole number of frames at
// fps, rounded to nearest and clamped to the 1..255 range a tone duration
// can hold.
func TicksFor(d time.Duration, fps int) uint8 {
	frame := FrameDuration(fps)
	ticks := (d + frame/2) / frame
	switch {
	case ticks < 1:
		return 1
	case ticks > 255:
		return 255
	default:
		return uint8(ticks)
	}
}
