package sink

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// otoLatency is the device buffer length of the oto sink.
const otoLatency = 40 * time.Millisecond

// Oto plays through github.com/ebitengine/oto/v3 as signed 16 bit mono.
type Oto struct {
	mu     sync.Mutex
	ctx    *oto.Context
	player *oto.Player
}

func NewOto() *Oto {
	return &Oto{}
}

func (o *Oto) Start(p Provider) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   p.SampleRate(),
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   otoLatency,
	})
	if err != nil {
		return fmt.Errorf("failed to open oto context: %w", err)
	}
	<-ready

	o.ctx = ctx
	o.player = ctx.NewPlayer(&pcmReader{provider: p})
	o.player.Play()
	slog.Info("Oto output started", "sample_rate", p.SampleRate())
	return nil
}

func (o *Oto) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player == nil {
		return nil
	}
	err := o.player.Close()
	o.player = nil
	return err
}

// pcmReader encodes provider samples as little endian int16 bytes.
type pcmReader struct {
	provider Provider
}

func (r *pcmReader) Read(p []byte) (int, error) {
	samples := r.provider.GetSamples(len(p) / 2)
	for i, v := range samples {
		binary.LittleEndian.PutUint16(p[2*i:], uint16(v))
	}
	return 2 * len(samples), nil
}
