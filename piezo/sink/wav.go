package sink

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/valerio/go-piezo/piezo/audio"
)

// WAV records everything the synth renders and writes it to a 16 bit mono
// WAV file on Close.
type WAV struct {
	path       string
	mu         sync.Mutex
	samples    []int16
	sampleRate int
	started    bool
}

func NewWAV(path string) *WAV {
	return &WAV{path: path}
}

// Start taps p, which must also implement audio.Tapper.
func (w *WAV) Start(p Provider) error {
	tapper, ok := p.(audio.Tapper)
	if !ok {
		return errors.New("wav sink needs a provider that can be tapped")
	}
	w.sampleRate = p.SampleRate()
	w.started = true
	tapper.AddTap(w.Write)
	return nil
}

// Write appends samples to the recording.
func (w *WAV) Write(samples []int16) {
	w.mu.Lock()
	w.samples = append(w.samples, samples...)
	w.mu.Unlock()
}

// Len returns the number of samples recorded.
func (w *WAV) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.samples)
}

func (w *WAV) Close() error {
	if !w.started {
		return nil
	}
	w.started = false

	w.mu.Lock()
	samples := w.samples
	w.samples = nil
	w.mu.Unlock()

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create wav file: %w", err)
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(w.sampleRate),
		NumChannels: 1,
		Precision:   2,
	}
	if err := wav.Encode(f, &sliceStreamer{samples: samples}, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode wav file: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	slog.Info("WAV file written", "path", w.path, "samples", len(samples),
		"seconds", format.SampleRate.D(len(samples)).Seconds())
	return nil
}

// sliceStreamer streams a fixed slice of mono samples.
type sliceStreamer struct {
	samples []int16
	pos     int
}

func (s *sliceStreamer) Stream(buf [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n = copy16(buf, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (*sliceStreamer) Err() error {
	return nil
}

func copy16(dst [][2]float64, src []int16) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		f := toFloat(src[i])
		dst[i][0] = f
		dst[i][1] = f
	}
	return n
}
