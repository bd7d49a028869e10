package beep

// ClockRate is the system clock, in Hz, that Freq1 and Freq2 assume.
const ClockRate = 16000000

// Prescaler divisors of the two channel timers.
const (
	Prescale1 = 8
	Prescale2 = 128
)

// Documented count range of each channel.
const (
	MinCount1 = 0
	MaxCount1 = 0xFFFF
	MinCount2 = 3
	MaxCount2 = 0x3FF
)

// Channel is the set of operations both speaker pins support.
type Channel interface {
	// Begin sets up the pin and timer. It must be called before anything
	// else and may be called again to re-apply the configuration.
	Begin()

	// PlayTone plays count until it is replaced or stopped.
	PlayTone(count uint16)

	// PlayToneFor plays count for ticks calls of Tick. A ticks value of 0
	// plays until replaced or stopped, same as PlayTone.
	PlayToneFor(count uint16, ticks uint8)

	// Tick counts down the duration of a timed tone and stops it when the
	// duration runs out.
	Tick()

	// StopTone silences the channel. It is safe to call when silent.
	StopTone()

	// Freq converts hz to a count for this channel.
	Freq(hz float64) uint16

	// Remaining returns the number of Tick calls left before a timed tone
	// stops, or 0 if none is pending.
	Remaining() uint8

	// Sounding reports whether the timer is currently driving the pin.
	Sounding() bool
}

var (
	_ Channel = (*Pin1)(nil)
	_ Channel = (*Pin2)(nil)
)
