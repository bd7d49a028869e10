package beep

import (
	"github.com/valerio/go-piezo/piezo/addr"
	"github.com/valerio/go-piezo/piezo/avr"
	"github.com/valerio/go-piezo/piezo/bit"
)

// Pin1 plays tones on speaker pin 1 with Timer/Counter3 in CTC mode, the
// pin toggling on every compare match.
type Pin1 struct {
	bus       avr.Bus
	remaining uint8
}

// NewPin1 returns the channel A driver for the registers on bus.
func NewPin1(bus avr.Bus) *Pin1 {
	return &Pin1{bus: bus}
}

func (p *Pin1) Begin() {
	p.remaining = 0
	p.bus.Write(addr.DDRC, bit.Set(addr.SpeakerPin1, p.bus.Read(addr.DDRC)))
	p.bus.Write(addr.PORTC, bit.Clear(addr.SpeakerPin1, p.bus.Read(addr.PORTC)))
	p.bus.Write(addr.TCCR3A, 0)
	p.bus.Write(addr.TCCR3B, bit.Mask(addr.WGM32, addr.CS31)) // CTC, clk/8
}

func (p *Pin1) PlayTone(count uint16) {
	p.PlayToneFor(count, 0)
}

func (p *Pin1) PlayToneFor(count uint16, ticks uint8) {
	checkCount("pin1", count, MinCount1, MaxCount1)
	p.remaining = ticks
	p.bus.Write(addr.TCCR3A, bit.Mask(addr.COM3A0)) // toggle OC3A on match
	p.bus.Write(addr.OCR3AH, bit.High(count))
	p.bus.Write(addr.OCR3AL, bit.Low(count))
}

func (p *Pin1) Tick() {
	if p.remaining == 0 {
		return
	}
	p.remaining--
	if p.remaining == 0 {
		p.silence()
	}
}

func (p *Pin1) StopTone() {
	p.remaining = 0
	p.silence()
}

// silence disconnects OC3A so the pin falls back to its PORTC level, low.
func (p *Pin1) silence() {
	p.bus.Write(addr.TCCR3A, 0)
	p.bus.Write(addr.PORTC, bit.Clear(addr.SpeakerPin1, p.bus.Read(addr.PORTC)))
}

func (p *Pin1) Freq(hz float64) uint16 {
	checkHz(hz)
	return Freq1(hz)
}

func (p *Pin1) Remaining() uint8 {
	return p.remaining
}

// SetRemaining overrides the duration counter of the current tone. Setting
// it to 0 turns a timed tone into a continuous one.
func (p *Pin1) SetRemaining(ticks uint8) {
	p.remaining = ticks
}

func (p *Pin1) Sounding() bool {
	return bit.Field(p.bus.Read(addr.TCCR3A), addr.COM3A1, addr.COM3A0) != 0
}
