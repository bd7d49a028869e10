package piezo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/valerio/go-piezo/piezo/backend"
	"github.com/valerio/go-piezo/piezo/input"
	"github.com/valerio/go-piezo/piezo/input/action"
	"github.com/valerio/go-piezo/piezo/input/event"
	"github.com/valerio/go-piezo/piezo/timing"
)

// consoleActions are the control actions the console handles itself.
var consoleActions = []action.Action{
	action.OctaveUp,
	action.OctaveDown,
	action.ChannelSwitch,
	action.SpeakerStop,
	action.SpeakerMuteToggle,
	action.TunePauseToggle,
	action.TuneRestart,
}

// Run drives the console frame by frame, showing each frame on b and
// feeding its input back, until b asks to quit or ctx is cancelled.
// limiter paces the frames; a nil limiter runs as fast as possible.
func Run(ctx context.Context, c *Console, b backend.Backend, limiter timing.Limiter) error {
	if limiter == nil {
		limiter = timing.NewNoOpLimiter()
	}

	running := true
	manager := input.NewManager()
	manager.On(action.Quit, event.Press, func() { running = false })
	manager.OnNote(func(act action.Action, evt event.Type) {
		c.HandleAction(act, evt == event.Press)
	})
	for _, act := range consoleActions {
		manager.On(act, event.Press, func() { c.HandleAction(act, true) })
	}

	limiter.Reset()
	for running {
		select {
		case <-ctx.Done():
			slog.Info("Stopping", "reason", ctx.Err(), "frame", c.Frame())
			return nil
		default:
		}

		c.RunFrame()

		events, err := b.Update(c.Status())
		if err != nil {
			return fmt.Errorf("backend update failed: %w", err)
		}
		for _, evt := range events {
			manager.Trigger(evt.Action, evt.Type)
		}

		limiter.WaitForNextFrame()
	}

	slog.Info("Quit requested", "frame", c.Frame())
	return nil
}
