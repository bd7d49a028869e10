package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/valerio/go-piezo/piezo/backend"
	"github.com/valerio/go-piezo/piezo/backend/terminal/render"
	"github.com/valerio/go-piezo/piezo/debug"
	"github.com/valerio/go-piezo/piezo/input"
	"github.com/valerio/go-piezo/piezo/input/action"
	"github.com/valerio/go-piezo/piezo/input/event"
)

const (
	channelHeight = 4
	statusHeight  = 2
	meterWidth    = 16
	waveWidth     = 48
	minTermWidth  = 60
	minTermHeight = 16
	logCapacity   = 200
)

// Backend draws the speaker state in a terminal with tcell and turns the
// keyboard into a two octave piano.
type Backend struct {
	screen    tcell.Screen
	logBuffer *render.LogBuffer
	logLevel  slog.Level
	config    backend.BackendConfig
	signals   chan os.Signal
	status    *debug.Status
}

// New creates a terminal backend on the current terminal.
func New() *Backend {
	return &Backend{logLevel: slog.LevelInfo}
}

// NewWithScreen creates a terminal backend drawing on screen.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen, logLevel: slog.LevelInfo}
}

func (t *Backend) Init(config backend.BackendConfig) error {
	t.config = config

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	t.logBuffer = render.NewLogBuffer(logCapacity)
	slog.SetDefault(slog.New(render.NewLogBufferHandler(t.logBuffer, slog.LevelDebug)))
	slog.Info("Terminal backend initialized")

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	t.signals = make(chan os.Signal, 1)
	signal.Notify(t.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	return nil
}

// Update draws status and returns the key presses since the last frame.
// Terminals report no key releases, so every event is a Press.
func (t *Backend) Update(status *debug.Status) ([]backend.InputEvent, error) {
	var events []backend.InputEvent

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if act, ok := mapKey(ev); ok {
				events = append(events, backend.InputEvent{Action: act, Type: event.Press})
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	select {
	case sig := <-t.signals:
		slog.Info("Received signal", "signal", sig)
		events = append(events, backend.InputEvent{Action: action.Quit, Type: event.Press})
		if t.config.Callbacks.OnQuit != nil {
			t.config.Callbacks.OnQuit()
		}
	default:
	}

	for _, evt := range events {
		t.handleAction(evt.Action)
	}

	if status != nil {
		t.status = status
	}
	t.render()
	t.screen.Show()

	return events, nil
}

func (t *Backend) Cleanup() error {
	if t.signals != nil {
		signal.Stop(t.signals)
	}
	if t.screen != nil {
		slog.Info("Cleaning up terminal backend")
		t.screen.Fini()
	}
	return nil
}

// LogLevel returns the lowest level shown in the log panel.
func (t *Backend) LogLevel() slog.Level {
	return t.logLevel
}

// handleAction processes the actions the terminal owns itself.
func (t *Backend) handleAction(act action.Action) {
	switch act {
	case action.DebugLogLevelIncrease:
		t.changeLogLevel(1)
	case action.DebugLogLevelDecrease:
		t.changeLogLevel(-1)
	}
}

// tcellKeyNameMap converts tcell keys to key names used in default mappings
var tcellKeyNameMap = map[tcell.Key]string{
	tcell.KeyEnter:  "Enter",
	tcell.KeyTab:    "Tab",
	tcell.KeyUp:     "Up",
	tcell.KeyDown:   "Down",
	tcell.KeyEscape: "Escape",
}

func mapKey(ev *tcell.EventKey) (action.Action, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return action.Quit, true
	case tcell.KeyRune:
		name := string(ev.Rune())
		if ev.Rune() == ' ' {
			name = "Space"
		}
		return input.GetDefaultMapping(name)
	}
	if name, ok := tcellKeyNameMap[ev.Key()]; ok {
		return input.GetDefaultMapping(name)
	}
	return 0, false
}

func (t *Backend) changeLogLevel(direction int) {
	levels := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	idx := 1
	for i, l := range levels {
		if l == t.logLevel {
			idx = i
		}
	}
	// increase shows more, so it moves towards debug
	idx = max(0, min(len(levels)-1, idx-direction))
	if levels[idx] != t.logLevel {
		slog.Info("Log filter changed", "from", t.logLevel, "to", levels[idx])
		t.logLevel = levels[idx]
	}
}

func (t *Backend) render() {
	termWidth, termHeight := t.screen.Size()
	t.screen.Clear()

	if termWidth < minTermWidth || termHeight < minTermHeight {
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		t.drawText(0, termHeight/2, termWidth, tcell.StyleDefault.Foreground(tcell.ColorRed), msg)
		return
	}

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	title := " go-piezo "
	if t.config.Title != "" {
		title = fmt.Sprintf(" go-piezo: %s ", t.config.Title)
	}
	t.drawText(1, 0, termWidth-1, titleStyle, title)

	y := 1
	if t.status != nil {
		t.drawChannel(y, termWidth, "A", "timer3 clk/8", t.status.Channels.A)
		y += channelHeight
		t.drawChannel(y, termWidth, "B", "timer4 clk/128", t.status.Channels.B)
		y += channelHeight
		t.drawStatus(y, termWidth)
	}
	y += statusHeight

	t.drawRule(y, termWidth)
	t.drawText(1, y, termWidth-1, titleStyle, fmt.Sprintf(" Logs [%s] (-/+ filter) ", render.LevelTag(t.logLevel)))
	t.drawLogs(y+1, termWidth, termHeight-1)

	help := " z-, piano  Up/Down octave  Tab channel  Space stop  a mute  p pause  r restart  q quit "
	t.drawText(0, termHeight-1, termWidth, tcell.StyleDefault, help)
}

func (t *Backend) drawChannel(y, width int, name, timer string, ch debug.ChannelStatus) {
	label := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	value := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	wave := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	t.drawRule(y, width)
	t.drawText(1, y, width-1, label, fmt.Sprintf(" Channel %s (%s) ", name, timer))

	state := "silent"
	if ch.Sounding {
		state = "playing"
	}
	line := fmt.Sprintf("%-7s  note %-4s  %9.2f Hz  count %5d", state, ch.Note, ch.Frequency, ch.Count)
	t.drawText(1, y+1, width-1, value, line)

	line = fmt.Sprintf("remaining %3d %s", ch.Remaining, render.Meter(float64(ch.Remaining), 255, meterWidth))
	t.drawText(1, y+2, width-1, value, line)

	period := 0
	if ch.Sounding && ch.Frequency > 0 {
		// 440 Hz draws with a period of four cells
		period = max(2, 2*int(880/ch.Frequency))
	}
	t.drawText(1, y+3, width-1, wave, render.Wave(period, waveWidth))
}

func (t *Backend) drawStatus(y, width int) {
	s := t.status
	style := tcell.StyleDefault
	flags := ""
	if s.Muted {
		flags += " MUTED"
	}
	if s.Paused {
		flags += " PAUSED"
	}
	tune := s.Tune
	if tune == "" {
		tune = "-"
	} else if s.TuneDone {
		tune += " (done)"
	}
	t.drawRule(y, width)
	t.drawText(1, y+1, width-1, style,
		fmt.Sprintf("frame %d  tune %s  piano %s octave %d%s", s.Frame, tune, s.Piano, s.Octave, flags))
}

func (t *Backend) drawLogs(startY, width, endY int) {
	available := endY - startY
	if available <= 0 {
		return
	}

	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, entry := range t.logBuffer.Recent(available, t.logLevel) {
		style := infoStyle
		switch entry.Level {
		case slog.LevelDebug:
			style = debugStyle
		case slog.LevelWarn:
			style = warnStyle
		case slog.LevelError:
			style = errStyle
		}
		t.drawText(1, startY+i, width-1, style, render.FormatLogEntry(entry))
	}
}

func (t *Backend) drawRule(y, width int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, '─', nil, style)
	}
}

func (t *Backend) drawText(x, y, width int, style tcell.Style, text string) {
	for i, ch := range []rune(render.Truncate(text, width)) {
		t.screen.SetContent(x+i, y, ch, nil, style)
	}
}
