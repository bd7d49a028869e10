package debug

import (
	"github.com/valerio/go-piezo/piezo/addr"
	"github.com/valerio/go-piezo/piezo/bit"
	"github.com/valerio/go-piezo/piezo/tune"
)

// MemoryReader provides read-only access to the I/O registers for debug tools.
type MemoryReader interface {
	Read(addr uint16) uint8
}

// RemainingProvider reports the duration counters, which live in the
// drivers rather than in registers.
type RemainingProvider interface {
	Remaining() (a, b uint8)
}

type ChannelStatus struct {
	Sounding  bool
	Running   bool // timer clock selected
	Count     uint16
	Prescale  int
	Frequency float64
	Note      string
	Remaining uint8
}

// Status is what the monitors show about the speaker.
type Status struct {
	Muted     bool
	Level     int
	Channels  struct{ A, B ChannelStatus }
	ClockRate uint32

	// Filled in by the console, not read from registers.
	Frame    uint64
	Tune     string
	TuneDone bool
	Paused   bool
	Octave   int
	Piano    string // channel the piano keys play on
}

var timer3Prescale = [8]int{0, 1, 8, 64, 256, 1024, 0, 0}

// ExtractStatus reads the channel state back from the timer registers.
// remaining may be nil.
func ExtractStatus(reader MemoryReader, clockRate uint32, remaining RemainingProvider) *Status {
	s := &Status{ClockRate: clockRate}

	ddrc := reader.Read(addr.DDRC)
	s.Muted = !bit.IsSet(addr.SpeakerPin1, ddrc) && !bit.IsSet(addr.SpeakerPin2, ddrc)

	extractChannelA(reader, clockRate, &s.Channels.A)
	extractChannelB(reader, clockRate, &s.Channels.B)

	if remaining != nil {
		s.Channels.A.Remaining, s.Channels.B.Remaining = remaining.Remaining()
	}

	return s
}

func extractChannelA(reader MemoryReader, clockRate uint32, ch *ChannelStatus) {
	ch.Sounding = bit.Field(reader.Read(addr.TCCR3A), addr.COM3A1, addr.COM3A0) != 0
	ch.Prescale = timer3Prescale[reader.Read(addr.TCCR3B)&0x07]
	ch.Running = ch.Prescale != 0

	low := reader.Read(addr.OCR3AL)
	high := reader.Read(addr.OCR3AH)
	ch.Count = bit.Combine(high, low)

	fill(ch, clockRate)
}

func extractChannelB(reader MemoryReader, clockRate uint32, ch *ChannelStatus) {
	ch.Sounding = bit.Field(reader.Read(addr.TCCR4A), addr.COM4A1, addr.COM4A0) != 0
	if cs := reader.Read(addr.TCCR4B) & 0x0F; cs != 0 {
		ch.Prescale = 1 << (cs - 1)
	}
	ch.Running = ch.Prescale != 0

	// reading the low byte latches bits 9-8 into TC4H
	low := reader.Read(addr.OCR4C)
	high := reader.Read(addr.TC4H) & 0x03
	ch.Count = bit.Combine(high, low)

	fill(ch, clockRate)
}

func fill(ch *ChannelStatus, clockRate uint32) {
	if !ch.Running {
		ch.Note = "--"
		return
	}
	ch.Frequency = float64(clockRate) / float64(ch.Prescale) / 2 / (float64(ch.Count) + 1)
	ch.Note = frequencyToNote(ch.Frequency)
}

func frequencyToNote(freq float64) string {
	if freq < 20 || freq > 20000 {
		return "--"
	}
	return tune.KeyName(tune.NearestKey(freq))
}
