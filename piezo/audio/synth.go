package audio

import (
	"sync"
)

// Speaker is the hardware Synth listens to: a clock it can advance and the
// drive across the piezo. avr.MCU implements it.
type Speaker interface {
	Tick(cycles int)
	SpeakerLevel() int
	ClockRate() uint32
}

// Synth turns the speaker pin levels of a simulated console into PCM. It
// owns the passage of time for the hardware: rendering n samples advances
// the clock by exactly the cycles those samples span.
type Synth struct {
	speaker    Speaker
	sampleRate int

	// Bresenham accumulators for the fractional cycles per probe and
	// samples per frame.
	cycleAcc uint64
	frameAcc int

	dcIn, dcOut float64

	sampleBuffer   []int16
	sampleBufferMu sync.Mutex // sinks drain the buffer from their own goroutine

	taps []func(samples []int16)

	samplesGenerated uint64
}

// New returns a Synth rendering speaker at sampleRate Hz.
func New(speaker Speaker, sampleRate int) *Synth {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Synth{
		speaker:      speaker,
		sampleRate:   sampleRate,
		sampleBuffer: make([]int16, 0, initialBufferCapacity),
	}
}

func (s *Synth) SampleRate() int {
	return s.sampleRate
}

// SamplesGenerated returns the number of samples rendered since New or Reset.
func (s *Synth) SamplesGenerated() uint64 {
	return s.samplesGenerated
}

// RenderFrame renders the samples covering one frame at fps frames per
// second and returns how many were produced. Fractional samples carry over
// so that the long-run rate is exact.
func (s *Synth) RenderFrame(fps int) int {
	if fps <= 0 {
		return 0
	}
	s.frameAcc += s.sampleRate
	n := s.frameAcc / fps
	s.frameAcc %= fps
	s.Render(n)
	return n
}

// Render advances the speaker clock by n samples and buffers them.
func (s *Synth) Render(n int) {
	if n <= 0 {
		return
	}

	rendered := make([]int16, n)
	probeRate := uint64(s.sampleRate) * subSamples
	clock := uint64(s.speaker.ClockRate())

	for i := range rendered {
		sum := 0
		for range subSamples {
			s.cycleAcc += clock
			cycles := s.cycleAcc / probeRate
			s.cycleAcc %= probeRate
			s.speaker.Tick(int(cycles))
			sum += s.speaker.SpeakerLevel()
		}
		rendered[i] = s.filter(float64(sum) / subSamples)
	}
	s.samplesGenerated += uint64(n)

	for _, tap := range s.taps {
		tap(rendered)
	}

	s.sampleBufferMu.Lock()
	s.sampleBuffer = append(s.sampleBuffer, rendered...)
	if len(s.sampleBuffer) > maxBufferSize {
		s.sampleBuffer = s.sampleBuffer[len(s.sampleBuffer)-bufferRetainSize:]
	}
	s.sampleBufferMu.Unlock()
}

// AddTap registers fn to see every rendered block of samples, on the
// rendering goroutine, before they are buffered. fn must not keep the slice.
func (s *Synth) AddTap(fn func(samples []int16)) {
	s.taps = append(s.taps, fn)
}

// filter removes the DC offset from a level in [-1, 1] and scales it.
func (s *Synth) filter(level float64) int16 {
	out := level - s.dcIn + dcPole*s.dcOut
	s.dcIn = level
	s.dcOut = out

	v := out * sampleAmplitude
	if v > maxSampleValue {
		v = maxSampleValue
	} else if v < minSampleValue {
		v = minSampleValue
	}
	return int16(v)
}

const (
	maxSampleValue = 32767
	minSampleValue = -32768
)

func (s *Synth) GetSamples(count int) []int16 {
	s.sampleBufferMu.Lock()
	defer s.sampleBufferMu.Unlock()

	if len(s.sampleBuffer) < count {
		samples := make([]int16, count)
		copy(samples, s.sampleBuffer)
		s.sampleBuffer = s.sampleBuffer[:0]
		return samples
	}

	samples := make([]int16, count)
	copy(samples, s.sampleBuffer)
	s.sampleBuffer = append(s.sampleBuffer[:0], s.sampleBuffer[count:]...)
	return samples
}

// Buffered returns how many samples are waiting to be drained.
func (s *Synth) Buffered() int {
	s.sampleBufferMu.Lock()
	defer s.sampleBufferMu.Unlock()
	return len(s.sampleBuffer)
}

// Reset drops buffered audio and filter state. The speaker is not reset.
func (s *Synth) Reset() {
	s.sampleBufferMu.Lock()
	s.sampleBuffer = s.sampleBuffer[:0]
	s.sampleBufferMu.Unlock()

	s.cycleAcc = 0
	s.frameAcc = 0
	s.dcIn, s.dcOut = 0, 0
	s.samplesGenerated = 0
}
