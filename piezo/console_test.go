package piezo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-piezo/piezo"
	"github.com/valerio/go-piezo/piezo/audio"
	"github.com/valerio/go-piezo/piezo/beep"
	"github.com/valerio/go-piezo/piezo/input/action"
	"github.com/valerio/go-piezo/piezo/tune"
)

func TestNewAppliesDefaults(t *testing.T) {
	c := piezo.New(piezo.Config{})

	cfg := c.Config()
	assert.Equal(t, uint32(beep.ClockRate), cfg.ClockRate)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, audio.DefaultSampleRate, cfg.SampleRate)
	assert.NotZero(t, cfg.NoteTicks)

	a, b := c.Channels()
	assert.False(t, a.Sounding())
	assert.False(t, b.Sounding())
	assert.True(t, c.Audio().Enabled())
	assert.True(t, c.TuneDone())
}

func TestNewMuted(t *testing.T) {
	c := piezo.New(piezo.Config{Muted: true})
	assert.False(t, c.Audio().Enabled())
	assert.True(t, c.Status().Muted)
}

func TestRunFrameRendersAudio(t *testing.T) {
	c := piezo.New(piezo.DefaultConfig())
	a, _ := c.Channels()
	a.PlayToneFor(a.Freq(1000), 2)

	c.RunFrame()
	assert.Equal(t, uint64(1), c.Frame())
	assert.Equal(t, 735, c.Synth().Buffered())
	assert.True(t, a.Sounding())

	c.RunFrame()
	assert.False(t, a.Sounding(), "tone stops on its second tick")

	samples := c.Synth().GetSamples(735)
	nonZero := 0
	for _, v := range samples {
		if v != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, 600)
}

func TestLoadTune(t *testing.T) {
	c := piezo.New(piezo.DefaultConfig())
	require.NoError(t, c.LoadTune(&tune.Tune{
		Name: "two",
		A:    []tune.Event{{Note: "A4", Ticks: 2}},
		B:    []tune.Event{{Note: "A3", Ticks: 1}},
	}))
	assert.False(t, c.TuneDone())

	c.RunFrame()
	s := c.Status()
	assert.Equal(t, "two", s.Tune)
	assert.True(t, s.Channels.A.Sounding)
	assert.Equal(t, "A4", s.Channels.A.Note)
	assert.Equal(t, uint8(2), s.Channels.A.Remaining)
	assert.True(t, s.Channels.B.Sounding)
	assert.Equal(t, "A3", s.Channels.B.Note)

	c.RunFrame()
	s = c.Status()
	assert.True(t, s.Channels.A.Sounding)
	assert.False(t, s.Channels.B.Sounding)

	c.RunFrame()
	assert.True(t, c.TuneDone())
	assert.True(t, c.Status().TuneDone)

	require.NoError(t, c.LoadTune(nil))
	assert.True(t, c.TuneDone())
	assert.Empty(t, c.Status().Tune)
}

func TestLoadTuneInvalid(t *testing.T) {
	c := piezo.New(piezo.DefaultConfig())
	err := c.LoadTune(&tune.Tune{A: []tune.Event{{Ticks: 1}}})
	assert.ErrorIs(t, err, tune.ErrBadTrack)
}

func TestPianoNotes(t *testing.T) {
	c := piezo.New(piezo.DefaultConfig())
	a, b := c.Channels()

	c.HandleAction(action.NoteA, true)
	s := c.Status()
	assert.True(t, s.Channels.A.Sounding)
	assert.Equal(t, "A4", s.Channels.A.Note)
	assert.Equal(t, c.Config().NoteTicks, a.Remaining())
	assert.False(t, b.Sounding())

	c.HandleAction(action.OctaveUp, true)
	c.HandleAction(action.ChannelSwitch, true)
	c.HandleAction(action.NoteC, true)
	s = c.Status()
	assert.Equal(t, "B", s.Piano)
	assert.Equal(t, 5, s.Octave)
	assert.True(t, s.Channels.B.Sounding)
	assert.Equal(t, "C5", s.Channels.B.Note)

	// releases do nothing
	c.HandleAction(action.NoteC, false)
	assert.True(t, b.Sounding())
}

func TestPianoNoteStopsAfterNoteTicks(t *testing.T) {
	cfg := piezo.DefaultConfig()
	cfg.NoteTicks = 3
	c := piezo.New(cfg)
	a, _ := c.Channels()

	c.HandleAction(action.NoteE, true)
	for range 2 {
		c.RunFrame()
		assert.True(t, a.Sounding())
	}
	c.RunFrame()
	assert.False(t, a.Sounding())
}

func TestPianoChannelBClampsLowNotes(t *testing.T) {
	c := piezo.New(piezo.DefaultConfig())
	_, b := c.Channels()

	c.HandleAction(action.ChannelSwitch, true)
	for range 10 {
		c.HandleAction(action.OctaveDown, true)
	}
	assert.Equal(t, 1, c.Status().Octave)

	// C1 is below the channel B range
	c.HandleAction(action.NoteC, true)
	assert.True(t, b.Sounding())
	assert.Equal(t, uint16(beep.MaxCount2), c.Status().Channels.B.Count)
}

func TestOctaveLimits(t *testing.T) {
	c := piezo.New(piezo.DefaultConfig())
	for range 10 {
		c.HandleAction(action.OctaveUp, true)
	}
	assert.Equal(t, 7, c.Status().Octave)
}

func TestSpeakerStop(t *testing.T) {
	c := piezo.New(piezo.DefaultConfig())
	require.NoError(t, c.LoadTune(&tune.Tune{A: []tune.Event{{Hz: 440, Ticks: 100}}}))
	c.RunFrame()
	a, b := c.Channels()
	b.PlayTone(b.Freq(440))

	c.HandleAction(action.SpeakerStop, true)

	assert.False(t, a.Sounding())
	assert.False(t, b.Sounding())
	assert.True(t, c.TuneDone())
}

func TestMuteToggle(t *testing.T) {
	c := piezo.New(piezo.DefaultConfig())
	a, _ := c.Channels()
	a.PlayTone(a.Freq(440))

	c.HandleAction(action.SpeakerMuteToggle, true)
	assert.True(t, c.Status().Muted)
	assert.True(t, a.Sounding(), "the driver keeps running while muted")

	c.RunFrame()
	for _, v := range c.Synth().GetSamples(735) {
		require.Equal(t, int16(0), v)
	}

	c.HandleAction(action.SpeakerMuteToggle, true)
	assert.False(t, c.Status().Muted)
}

func TestPauseAndRestart(t *testing.T) {
	c := piezo.New(piezo.DefaultConfig())
	require.NoError(t, c.LoadTune(&tune.Tune{Name: "long", A: []tune.Event{{Hz: 440, Ticks: 10}}}))
	c.RunFrame()
	a, _ := c.Channels()
	require.True(t, a.Sounding())

	c.HandleAction(action.TunePauseToggle, true)
	assert.True(t, c.Status().Paused)
	assert.False(t, a.Sounding())
	c.RunFrame()
	assert.False(t, a.Sounding())

	c.HandleAction(action.TuneRestart, true)
	assert.False(t, c.Status().Paused)
	c.RunFrame()
	assert.True(t, a.Sounding())
	assert.Equal(t, uint8(10), a.Remaining())
}

func TestPauseWithoutTune(t *testing.T) {
	c := piezo.New(piezo.DefaultConfig())
	c.HandleAction(action.TunePauseToggle, true)
	assert.False(t, c.Status().Paused)
}
