// Package tune describes two-voice tunes for the speaker and plays them
// through the beep channels one frame at a time.
package tune

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownNote is returned for a note name that cannot be parsed.
	ErrUnknownNote = errors.New("unknown note")
	// ErrBadTrack is returned for a track event that is not exactly one of a
	// note, a frequency or a rest, or that has no duration.
	ErrBadTrack = errors.New("bad event")
)

// Event is one note or rest of a voice. Exactly one of Note, Hz or Rest is
// set. Ticks is the duration in frames; durations over 255 frames are
// played as consecutive tones.
type Event struct {
	Note  string  `yaml:"note,omitempty"`
	Hz    float64 `yaml:"hz,omitempty"`
	Rest  bool    `yaml:"rest,omitempty"`
	Ticks int     `yaml:"ticks"`
}

// Tune is a pair of voices, one per speaker channel.
type Tune struct {
	Name string  `yaml:"name"`
	FPS  int     `yaml:"fps,omitempty"`
	Loop bool    `yaml:"loop,omitempty"`
	A    []Event `yaml:"a,omitempty"`
	B    []Event `yaml:"b,omitempty"`
}

// Parse decodes and validates a YAML tune.
func Parse(data []byte) (*Tune, error) {
	var t Tune
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode tune: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load reads a YAML tune from path.
func Load(path string) (*Tune, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Marshal encodes t as YAML.
func (t *Tune) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}

// Validate checks every event of both voices.
func (t *Tune) Validate() error {
	if t.FPS < 0 {
		return fmt.Errorf("fps must not be negative, got %d", t.FPS)
	}
	for voice, events := range map[string][]Event{"a": t.A, "b": t.B} {
		for i, e := range events {
			if err := e.validate(); err != nil {
				return fmt.Errorf("voice %s event %d: %w", voice, i, err)
			}
		}
	}
	return nil
}

// Frames returns the length of the longer voice in frames.
func (t *Tune) Frames() int {
	return max(frames(t.A), frames(t.B))
}

func frames(events []Event) int {
	total := 0
	for _, e := range events {
		total += e.Ticks
	}
	return total
}

func (e Event) validate() error {
	kinds := 0
	if e.Note != "" {
		kinds++
		if _, err := NoteHz(e.Note); err != nil {
			return err
		}
	}
	if e.Hz != 0 {
		kinds++
		if e.Hz < 0 {
			return fmt.Errorf("%w: negative frequency %g", ErrBadTrack, e.Hz)
		}
	}
	if e.Rest {
		kinds++
	}
	if kinds != 1 {
		return fmt.Errorf("%w: need exactly one of note, hz or rest", ErrBadTrack)
	}
	if e.Ticks < 1 {
		return fmt.Errorf("%w: ticks must be at least 1, got %d", ErrBadTrack, e.Ticks)
	}
	return nil
}

// hz returns the frequency of a note or hz event.
func (e Event) hz() float64 {
	if e.Note != "" {
		hz, _ := NoteHz(e.Note)
		return hz
	}
	return e.Hz
}
