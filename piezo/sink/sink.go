// Package sink plays or records the samples rendered by the console.
//
// Output sinks pull from an audio.Provider on their own goroutine at the
// pace of the audio device. The WAV sink instead taps the synth as it
// renders, so it captures every sample no matter what drains the buffer.
package sink

import (
	"errors"
	"fmt"
	"strings"
)

// Sink consumes audio from a provider until closed.
type Sink interface {
	Start(p Provider) error
	Close() error
}

// ErrUnsupported is returned for outputs this build cannot open.
var ErrUnsupported = errors.New("audio output not supported in this build")

// Output names accepted by New.
const (
	OutputSpeaker = "speaker"
	OutputOto     = "oto"
	OutputSDL     = "sdl"
	OutputNone    = "none"
)

// New returns the output sink called name.
func New(name string) (Sink, error) {
	switch strings.ToLower(name) {
	case OutputSpeaker:
		return NewSpeaker(), nil
	case OutputOto:
		return NewOto(), nil
	case OutputSDL:
		s, err := NewSDL()
		if err != nil {
			return nil, err
		}
		return s, nil
	case OutputNone, "":
		return Discard{}, nil
	default:
		return nil, fmt.Errorf("unknown audio output %q", name)
	}
}

// Discard is a sink that plays nothing.
type Discard struct{}

func (Discard) Start(Provider) error { return nil }
func (Discard) Close() error         { return nil }

// toFloat converts a sample to [-1, 1).
func toFloat(v int16) float64 {
	return float64(v) / 32768
}
