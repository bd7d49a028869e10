//go:build beepdebug

package beep

import "log/slog"

func checkCount(channel string, count, min, max uint16) {
	if count < min || count > max {
		slog.Warn("Tone count out of range", "channel", channel, "count", count, "min", min, "max", max)
	}
}

func checkHz(hz float64) {
	if hz <= 0 {
		slog.Warn("Tone frequency must be positive", "hz", hz)
	}
}
