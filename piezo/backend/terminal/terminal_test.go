package terminal

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-piezo/piezo/backend"
	"github.com/valerio/go-piezo/piezo/debug"
	"github.com/valerio/go-piezo/piezo/input/action"
	"github.com/valerio/go-piezo/piezo/input/event"
)

func newSimBackend(t *testing.T) (*Backend, tcell.SimulationScreen) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	screen := tcell.NewSimulationScreen("")
	b := NewWithScreen(screen)
	require.NoError(t, b.Init(backend.BackendConfig{Title: "test"}))
	screen.SetSize(100, 30)
	t.Cleanup(func() { _ = b.Cleanup() })
	return b, screen
}

func screenText(screen tcell.SimulationScreen) string {
	cells, width, _ := screen.GetContents()
	var sb strings.Builder
	for i, c := range cells {
		if len(c.Runes) > 0 {
			sb.WriteRune(c.Runes[0])
		} else {
			sb.WriteRune(' ')
		}
		if (i+1)%width == 0 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

func TestKeysBecomeEvents(t *testing.T) {
	b, screen := newSimBackend(t)

	screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'y', tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)

	events, err := b.Update(&debug.Status{})
	require.NoError(t, err)

	assert.Equal(t, []backend.InputEvent{
		{Action: action.NoteA, Type: event.Press},
		{Action: action.SpeakerStop, Type: event.Press},
		{Action: action.ChannelSwitch, Type: event.Press},
		{Action: action.Quit, Type: event.Press},
	}, events)
}

func TestLogLevelKeys(t *testing.T) {
	b, screen := newSimBackend(t)
	require.Equal(t, slog.LevelInfo, b.LogLevel())

	screen.InjectKey(tcell.KeyRune, '-', tcell.ModNone)
	_, err := b.Update(nil)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, b.LogLevel())

	screen.InjectKey(tcell.KeyRune, '+', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, '+', tcell.ModNone)
	_, err = b.Update(nil)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, b.LogLevel())

	screen.InjectKey(tcell.KeyRune, '+', tcell.ModNone)
	_, err = b.Update(nil)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, b.LogLevel())
}

func TestRendersStatus(t *testing.T) {
	b, screen := newSimBackend(t)

	status := &debug.Status{Muted: true, Tune: "startup", Frame: 42, Piano: "A", Octave: 4}
	status.Channels.A = debug.ChannelStatus{Sounding: true, Note: "A4", Frequency: 439.96, Count: 2272, Remaining: 10}
	status.Channels.B = debug.ChannelStatus{Note: "--"}
	slog.Info("Hello from the test")

	_, err := b.Update(status)
	require.NoError(t, err)

	text := screenText(screen)
	assert.Contains(t, text, "go-piezo: test")
	assert.Contains(t, text, "Channel A (timer3 clk/8)")
	assert.Contains(t, text, "Channel B (timer4 clk/128)")
	assert.Contains(t, text, "note A4")
	assert.Contains(t, text, "439.96 Hz")
	assert.Contains(t, text, "count  2272")
	assert.Contains(t, text, "frame 42  tune startup  piano A octave 4 MUTED")
	assert.Contains(t, text, "Hello from the test")
}

func TestTooSmall(t *testing.T) {
	b, screen := newSimBackend(t)
	screen.SetSize(20, 5)

	_, err := b.Update(&debug.Status{})
	require.NoError(t, err)

	assert.Contains(t, screenText(screen), "Terminal too")
}
