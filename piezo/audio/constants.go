package audio

const (
	// DefaultSampleRate is the output sample rate in Hz.
	DefaultSampleRate = 44100

	// subSamples is how many times the speaker level is probed per output
	// sample; the probes are averaged as a box filter against aliasing.
	subSamples = 4

	// sampleAmplitude scales a full speaker swing into the int16 range
	// while leaving headroom for the DC blocker's overshoot.
	sampleAmplitude = 12000

	// dcPole is the pole of the DC blocking filter. A single driven pin
	// swings between 0 and 1, not -1 and 1, so its offset is removed.
	dcPole = 0.995
)

// Buffer sizing, in samples.
const (
	initialBufferCapacity = 4096
	maxBufferSize         = DefaultSampleRate
	bufferRetainSize      = DefaultSampleRate / 4
)
