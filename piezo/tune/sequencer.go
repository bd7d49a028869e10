package tune

import (
	"log/slog"

	"github.com/valerio/go-piezo/piezo/beep"
)

// voice plays one track on one channel.
type voice struct {
	ch    beep.Channel
	track Track
	pos   int
	wait  int
}

// step advances the voice by one frame, starting the next step of the track
// when the current one has run out. It reports whether anything is left.
func (v *voice) step() bool {
	if v.wait > 0 {
		v.wait--
	}
	if v.wait > 0 {
		return true
	}
	if v.pos >= len(v.track) {
		return false
	}

	s := v.track[v.pos]
	v.pos++
	v.wait = int(s.Ticks)
	if s.Rest {
		v.ch.StopTone()
	} else {
		v.ch.PlayToneFor(s.Count, s.Ticks)
	}
	return true
}

func (v *voice) rewind() {
	v.pos = 0
	v.wait = 0
}

// Sequencer plays a compiled tune on two channels. It relies on the timed
// stop of the channels, so Step must be called once per frame after the
// channels have been ticked.
type Sequencer struct {
	name string
	a, b voice
	loop bool
	done bool
}

// NewSequencer compiles t for playback on a and b.
func NewSequencer(t *Tune, a, b beep.Channel) (*Sequencer, error) {
	ta, tb, err := t.Compile()
	if err != nil {
		return nil, err
	}
	slog.Debug("Tune loaded", "name", t.Name, "frames_a", ta.Frames(), "frames_b", tb.Frames(), "loop", t.Loop)
	return &Sequencer{
		name: t.Name,
		a:    voice{ch: a, track: ta},
		b:    voice{ch: b, track: tb},
		loop: t.Loop,
	}, nil
}

// Name returns the name of the tune being played.
func (s *Sequencer) Name() string {
	return s.name
}

// Step runs one frame of the tune.
func (s *Sequencer) Step() {
	if s.done {
		return
	}

	moreA := s.a.step()
	moreB := s.b.step()
	if moreA || moreB {
		return
	}

	if !s.loop || (len(s.a.track) == 0 && len(s.b.track) == 0) {
		s.done = true
		slog.Debug("Tune finished", "name", s.name)
		return
	}

	s.a.rewind()
	s.b.rewind()
	s.a.step()
	s.b.step()
}

// Done reports whether a non-looping tune has played to the end.
func (s *Sequencer) Done() bool {
	return s.done
}

// Stop silences both channels and ends playback.
func (s *Sequencer) Stop() {
	s.a.ch.StopTone()
	s.b.ch.StopTone()
	s.done = true
}

// Rewind restarts the tune from the beginning on the next Step.
func (s *Sequencer) Rewind() {
	s.a.rewind()
	s.b.rewind()
	s.done = false
}
