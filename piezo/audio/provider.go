package audio

// Provider is the source audio sinks pull samples from.
type Provider interface {
	// GetSamples removes and returns count mono samples, padding with
	// silence if fewer are buffered.
	GetSamples(count int) []int16

	// SampleRate returns the rate the samples were rendered at.
	SampleRate() int
}

// Tapper is a Provider whose samples can also be observed as they are
// rendered, without draining them.
type Tapper interface {
	Provider
	AddTap(fn func(samples []int16))
}

var _ Tapper = (*Synth)(nil)
