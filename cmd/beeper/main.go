package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/urfave/cli"

	"github.com/valerio/go-piezo/piezo"
	"github.com/valerio/go-piezo/piezo/backend"
	"github.com/valerio/go-piezo/piezo/backend/headless"
	"github.com/valerio/go-piezo/piezo/backend/terminal"
	"github.com/valerio/go-piezo/piezo/sink"
	"github.com/valerio/go-piezo/piezo/timing"
	"github.com/valerio/go-piezo/piezo/tune"
)

func main() {
	app := cli.NewApp()
	app.Name = "beeper"
	app.Description = "Plays tunes and a keyboard piano on a simulated handheld piezo speaker"
	app.Usage = "beeper [options] [tune file]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "tune",
			Usage: "Path to a YAML tune file",
		},
		cli.StringFlag{
			Name:  "midi",
			Usage: "Path to a standard MIDI file, folded into two voices",
		},
		cli.BoolFlag{
			Name:  "loop",
			Usage: "Loop the tune",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without the terminal interface",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (0 = until the tune ends)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "status-interval",
			Usage: "Log the speaker status every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "fps",
			Usage: "Frames per second, the rate at which tone durations count down",
			Value: timing.DefaultFPS,
		},
		cli.StringFlag{
			Name:  "output",
			Usage: "Audio output: speaker, oto, sdl or none",
			Value: sink.OutputSpeaker,
		},
		cli.StringFlag{
			Name:  "wav",
			Usage: "Also record the audio to this WAV file",
		},
		cli.BoolFlag{
			Name:  "muted",
			Usage: "Start with the speaker muted",
		},
		cli.BoolFlag{
			Name:  "fast",
			Usage: "Do not pace frames in real time (headless rendering)",
		},
		cli.StringFlag{
			Name:  "limiter",
			Usage: "Frame pacing: adaptive or ticker",
			Value: "adaptive",
		},
	}
	app.Action = runBeeper

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running beeper", "error", err)
		os.Exit(1)
	}
}

func runBeeper(c *cli.Context) error {
	fps := c.Int("fps")
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	t, err := loadTune(c, fps)
	if err != nil {
		return err
	}

	config := piezo.DefaultConfig()
	config.FPS = fps
	config.Muted = c.Bool("muted")
	console := piezo.New(config)
	if err := console.LoadTune(t); err != nil {
		return err
	}

	var be backend.Backend
	if c.Bool("headless") {
		if c.Int("frames") == 0 && t == nil {
			return errors.New("headless mode without a tune requires --frames")
		}
		be = headless.New(c.Int("frames"), c.Int("status-interval"))
	} else {
		be = terminal.New()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	title := ""
	if t != nil {
		title = t.Name
	}
	if err := be.Init(backend.BackendConfig{
		Title:     title,
		FPS:       fps,
		Callbacks: backend.BackendCallbacks{OnQuit: stop},
	}); err != nil {
		return err
	}
	defer be.Cleanup()

	sinks, err := startSinks(c, console)
	defer closeSinks(sinks)
	if err != nil {
		return err
	}

	limiter, err := newLimiter(c, fps)
	if err != nil {
		return err
	}
	if tl, ok := limiter.(*timing.TickerLimiter); ok {
		defer tl.Stop()
	}

	return piezo.Run(ctx, console, be, limiter)
}

func newLimiter(c *cli.Context, fps int) (timing.Limiter, error) {
	if c.Bool("fast") {
		return timing.NewNoOpLimiter(), nil
	}
	switch c.String("limiter") {
	case "adaptive", "":
		return timing.NewAdaptiveLimiter(fps), nil
	case "ticker":
		return timing.NewTickerLimiter(fps), nil
	default:
		return nil, fmt.Errorf("unknown limiter %q", c.String("limiter"))
	}
}

// loadTune reads the tune named by --tune, --midi or the first argument.
func loadTune(c *cli.Context, fps int) (*tune.Tune, error) {
	path := c.String("tune")
	if path == "" && c.NArg() > 0 {
		path = c.Args().Get(0)
	}

	var (
		t   *tune.Tune
		err error
	)
	switch {
	case c.String("midi") != "":
		t, err = tune.LoadMIDI(c.String("midi"), fps)
	case path == "":
		return nil, nil
	case isMIDI(path):
		t, err = tune.LoadMIDI(path, fps)
	default:
		t, err = tune.Load(path)
	}
	if err != nil {
		return nil, err
	}

	if c.Bool("loop") {
		t.Loop = true
	}
	return t, nil
}

func isMIDI(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mid", ".midi", ".smf":
		return true
	}
	return false
}

func startSinks(c *cli.Context, console *piezo.Console) ([]sink.Sink, error) {
	var sinks []sink.Sink

	if path := c.String("wav"); path != "" {
		w := sink.NewWAV(path)
		if err := w.Start(console.Synth()); err != nil {
			return sinks, err
		}
		sinks = append(sinks, w)
	}

	output := c.String("output")
	if c.Bool("fast") && output != sink.OutputNone {
		slog.Warn("Audio output disabled when not running in real time", "output", output)
		output = sink.OutputNone
	}
	out, err := sink.New(output)
	if err != nil {
		return sinks, err
	}
	if err := out.Start(console.Synth()); err != nil {
		return sinks, err
	}
	return append(sinks, out), nil
}

func closeSinks(sinks []sink.Sink) {
	for _, s := range sinks {
		if err := s.Close(); err != nil {
			slog.Error("Failed to close audio output", "error", err)
		}
	}
}
