package sink

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// speakerLatency is the device buffer length of the speaker sink.
const speakerLatency = 50 * time.Millisecond

// Speaker plays through github.com/faiface/beep/speaker.
type Speaker struct {
	started bool
}

func NewSpeaker() *Speaker {
	return &Speaker{}
}

func (s *Speaker) Start(p Provider) error {
	sr := beep.SampleRate(p.SampleRate())
	if err := speaker.Init(sr, sr.N(speakerLatency)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}
	speaker.Play(&streamer{provider: p})
	s.started = true
	slog.Info("Speaker output started", "sample_rate", p.SampleRate())
	return nil
}

func (s *Speaker) Close() error {
	if !s.started {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	s.started = false
	return nil
}

// streamer adapts a Provider to beep.Streamer, duplicating the mono
// samples into both channels. It never ends.
type streamer struct {
	provider Provider
}

func (st *streamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i, v := range st.provider.GetSamples(len(samples)) {
		f := toFloat(v)
		samples[i][0] = f
		samples[i][1] = f
	}
	return len(samples), true
}

func (*streamer) Err() error {
	return nil
}
