package timing

import "time"

// TickerLimiter uses time.Ticker for simple, consistent frame timing.
// It drops frames rather than catching up when the loop falls behind.
type TickerLimiter struct {
	ticker *time.Ticker
	frame  time.Duration
}

func NewTickerLimiter(fps int) *TickerLimiter {
	frame := FrameDuration(fps)
	return &TickerLimiter{
		ticker: time.NewTicker(frame),
		frame:  frame,
	}
}

func (t *TickerLimiter) WaitForNextFrame() {
	<-t.ticker.C
}

func (t *TickerLimiter) Reset() {
	t.ticker.Reset(t.frame)
}

func (t *TickerLimiter) Stop() {
	t.ticker.Stop()
}
