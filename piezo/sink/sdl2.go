//go:build sdl2

package sink

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	sdlPollInterval = 5 * time.Millisecond
	sdlQueueTarget  = 60 * time.Millisecond
	sdlBufferFrames = 512
)

// SDL keeps an SDL2 audio device queue topped up from the provider.
type SDL struct {
	device sdl.AudioDeviceID
	done   chan struct{}
	wg     sync.WaitGroup
}

func NewSDL() (*SDL, error) {
	return &SDL{}, nil
}

func (s *SDL) Start(p Provider) error {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("failed to initialize SDL audio: %w", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(p.SampleRate()),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  sdlBufferFrames,
	}
	device, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return fmt.Errorf("failed to open SDL audio device: %w", err)
	}
	s.device = device
	s.done = make(chan struct{})

	sdl.PauseAudioDevice(device, false)

	target := uint32(p.SampleRate()) * uint32(sdlQueueTarget/time.Millisecond) / 1000 * 2
	s.wg.Add(1)
	go s.feed(p, target)

	slog.Info("SDL audio output started", "sample_rate", p.SampleRate())
	return nil
}

// feed queues samples whenever the device queue drops below target bytes.
func (s *SDL) feed(p Provider, target uint32) {
	defer s.wg.Done()
	ticker := time.NewTicker(sdlPollInterval)
	defer ticker.Stop()

	var buf []byte
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
		}

		queued := sdl.GetQueuedAudioSize(s.device)
		if queued >= target {
			continue
		}
		samples := p.GetSamples(int(target-queued) / 2)
		buf = buf[:0]
		for _, v := range samples {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
		}
		if err := sdl.QueueAudio(s.device, buf); err != nil {
			slog.Warn("Failed to queue audio", "error", err)
		}
	}
}

func (s *SDL) Close() error {
	if s.done == nil {
		return nil
	}
	close(s.done)
	s.wg.Wait()
	s.done = nil

	sdl.CloseAudioDevice(s.device)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
