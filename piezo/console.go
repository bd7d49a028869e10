// Package piezo ties the speaker drivers, the simulated microcontroller and
// the synthesiser together into a console that runs one frame at a time.
package piezo

import (
	"log/slog"

	"github.com/valerio/go-piezo/piezo/audio"
	"github.com/valerio/go-piezo/piezo/avr"
	"github.com/valerio/go-piezo/piezo/beep"
	"github.com/valerio/go-piezo/piezo/debug"
	"github.com/valerio/go-piezo/piezo/input/action"
	"github.com/valerio/go-piezo/piezo/mute"
	"github.com/valerio/go-piezo/piezo/timing"
	"github.com/valerio/go-piezo/piezo/tune"
)

const (
	defaultOctave = 4
	minOctave     = 1
	maxOctave     = 7

	// defaultNoteTicks is how long a piano key sounds, terminals report
	// no key release
	defaultNoteTicks = 15
)

// Config holds the console settings.
type Config struct {
	ClockRate  uint32
	FPS        int
	SampleRate int
	Muted      bool
	NoteTicks  uint8 // frames a piano key sounds for
}

// DefaultConfig returns the settings of the real hardware.
func DefaultConfig() Config {
	return Config{
		ClockRate:  beep.ClockRate,
		FPS:        timing.DefaultFPS,
		SampleRate: audio.DefaultSampleRate,
		NoteTicks:  defaultNoteTicks,
	}
}

// Console is a simulated handheld with its two speaker channels.
type Console struct {
	config Config

	mcu   *avr.MCU
	pin1  *beep.Pin1
	pin2  *beep.Pin2
	audio *mute.Audio
	synth *audio.Synth

	seq    *tune.Sequencer
	paused bool
	frame  uint64

	octave int
	pianoB bool
}

// New returns a console that has been powered on and set up: both channels
// begun and the speaker muted or not as configured.
func New(config Config) *Console {
	def := DefaultConfig()
	if config.ClockRate == 0 {
		config.ClockRate = def.ClockRate
	}
	if config.FPS <= 0 {
		config.FPS = def.FPS
	}
	if config.SampleRate <= 0 {
		config.SampleRate = def.SampleRate
	}
	if config.NoteTicks == 0 {
		config.NoteTicks = def.NoteTicks
	}

	mcu := avr.New(config.ClockRate)
	c := &Console{
		config: config,
		mcu:    mcu,
		pin1:   beep.NewPin1(mcu),
		pin2:   beep.NewPin2(mcu),
		audio:  mute.New(mcu),
		synth:  audio.New(mcu, config.SampleRate),
		octave: defaultOctave,
	}
	c.Begin()
	return c
}

// Begin sets up both channels and applies the configured mute state.
func (c *Console) Begin() {
	c.pin1.Begin()
	c.pin2.Begin()
	c.audio.Begin(!c.config.Muted)
}

// Config returns the settings in use, defaults filled in.
func (c *Console) Config() Config {
	return c.config
}

// LoadTune starts playing t from the next frame. A nil tune stops playback.
func (c *Console) LoadTune(t *tune.Tune) error {
	if t == nil {
		c.seq = nil
		return nil
	}
	if t.FPS != 0 && t.FPS != c.config.FPS {
		slog.Warn("Tune frame rate differs from console", "tune", t.FPS, "console", c.config.FPS)
	}
	seq, err := tune.NewSequencer(t, c.pin1, c.pin2)
	if err != nil {
		return err
	}
	c.seq = seq
	c.paused = false
	slog.Info("Playing tune", "name", t.Name, "frames", t.Frames(), "loop", t.Loop)
	return nil
}

// RunFrame runs one frame: the channel durations count down, the tune moves
// on, and a frame of audio is rendered.
func (c *Console) RunFrame() {
	c.pin1.Tick()
	c.pin2.Tick()
	if c.seq != nil && !c.paused {
		c.seq.Step()
	}
	c.synth.RenderFrame(c.config.FPS)
	c.frame++
}

// Frame returns the number of frames run.
func (c *Console) Frame() uint64 {
	return c.frame
}

// Channels returns the two speaker channels.
func (c *Console) Channels() (a, b beep.Channel) {
	return c.pin1, c.pin2
}

// Remaining returns the duration counters of both channels.
func (c *Console) Remaining() (a, b uint8) {
	return c.pin1.Remaining(), c.pin2.Remaining()
}

// Audio returns the mute control.
func (c *Console) Audio() *mute.Audio {
	return c.audio
}

// Synth returns the sample source for audio sinks.
func (c *Console) Synth() *audio.Synth {
	return c.synth
}

// MCU returns the simulated microcontroller.
func (c *Console) MCU() *avr.MCU {
	return c.mcu
}

// TuneDone reports whether there is no tune or it has played to the end.
func (c *Console) TuneDone() bool {
	return c.seq == nil || c.seq.Done()
}

// Status reports the state of the speaker for the backends.
func (c *Console) Status() *debug.Status {
	s := debug.ExtractStatus(c.mcu, c.config.ClockRate, c)
	s.Level = c.mcu.SpeakerLevel()
	s.Frame = c.frame
	s.Paused = c.paused
	s.Octave = c.octave
	s.Piano = "A"
	if c.pianoB {
		s.Piano = "B"
	}
	if c.seq != nil {
		s.Tune = c.seq.Name()
		s.TuneDone = c.seq.Done()
	}
	return s
}

// HandleAction applies an input action. Only presses do anything: piano
// notes are timed, so a release has nothing to stop.
func (c *Console) HandleAction(act action.Action, pressed bool) {
	if !pressed {
		return
	}

	if act.IsNote() {
		c.playNote(act)
		return
	}

	switch act {
	case action.OctaveUp:
		c.octave = min(c.octave+1, maxOctave)
		slog.Debug("Octave changed", "octave", c.octave)
	case action.OctaveDown:
		c.octave = max(c.octave-1, minOctave)
		slog.Debug("Octave changed", "octave", c.octave)
	case action.ChannelSwitch:
		c.pianoB = !c.pianoB
		slog.Debug("Piano channel changed", "channel_b", c.pianoB)
	case action.SpeakerStop:
		if c.seq != nil {
			c.seq.Stop()
		}
		c.pin1.StopTone()
		c.pin2.StopTone()
		slog.Info("Speaker stopped")
	case action.SpeakerMuteToggle:
		c.audio.Toggle()
		slog.Info("Speaker mute toggled", "enabled", c.audio.Enabled())
	case action.TunePauseToggle:
		c.togglePause()
	case action.TuneRestart:
		if c.seq != nil {
			c.seq.Rewind()
			c.paused = false
			slog.Info("Tune restarted", "name", c.seq.Name())
		}
	}
}

func (c *Console) togglePause() {
	if c.seq == nil {
		return
	}
	c.paused = !c.paused
	if c.paused {
		c.pin1.StopTone()
		c.pin2.StopTone()
	}
	slog.Info("Tune pause toggled", "paused", c.paused)
}

// playNote plays a piano key on the selected channel, clamping the count to
// what the channel can play.
func (c *Console) playNote(act action.Action) {
	key := (c.octave+1)*12 + act.Semitone()
	hz := tune.KeyHz(key)

	var ch beep.Channel = c.pin1
	count := beep.Count(float64(c.config.ClockRate), beep.Prescale1, hz)
	if c.pianoB {
		ch = c.pin2
		count = beep.Count(float64(c.config.ClockRate), beep.Prescale2, hz)
		count = max(min(count, beep.MaxCount2), beep.MinCount2)
	}

	ch.PlayToneFor(count, c.config.NoteTicks)
	slog.Debug("Piano note", "note", tune.KeyName(key), "hz", hz, "count", count)
}
