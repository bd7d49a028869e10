package beep

import (
	"github.com/valerio/go-piezo/piezo/addr"
	"github.com/valerio/go-piezo/piezo/avr"
	"github.com/valerio/go-piezo/piezo/bit"
)

// Pin2 plays tones on speaker pin 2 with the 10 bit Timer/Counter4. The
// counter runs from 0 to OCR4C and the pin toggles each time it passes
// OCR4A, which stays at 0.
//
// Pin2 has a narrower range and coarser resolution than Pin1; prefer Pin1
// unless other code already uses speaker pin 1.
type Pin2 struct {
	bus       avr.Bus
	remaining uint8
}

// NewPin2 returns the channel B driver for the registers on bus.
func NewPin2(bus avr.Bus) *Pin2 {
	return &Pin2{bus: bus}
}

func (p *Pin2) Begin() {
	p.remaining = 0
	p.bus.Write(addr.DDRC, bit.Set(addr.SpeakerPin2, p.bus.Read(addr.DDRC)))
	p.bus.Write(addr.PORTC, bit.Clear(addr.SpeakerPin2, p.bus.Read(addr.PORTC)))
	p.bus.Write(addr.TCCR4A, 0)                   // normal mode, no PWM
	p.bus.Write(addr.TCCR4B, bit.Mask(addr.CS43)) // clk/128
	p.bus.Write(addr.TCCR4D, 0)
	p.bus.Write(addr.TC4H, 0) // toggle when the counter passes 0
	p.bus.Write(addr.OCR4A, 0)
}

func (p *Pin2) PlayTone(count uint16) {
	p.PlayToneFor(count, 0)
}

func (p *Pin2) PlayToneFor(count uint16, ticks uint8) {
	checkCount("pin2", count, MinCount2, MaxCount2)
	p.remaining = ticks
	p.bus.Write(addr.TCCR4A, bit.Mask(addr.COM4A0)) // toggle OC4A on match
	p.bus.Write(addr.TC4H, bit.High(count))
	p.bus.Write(addr.OCR4C, bit.Low(count))
}

func (p *Pin2) Tick() {
	if p.remaining == 0 {
		return
	}
	p.remaining--
	if p.remaining == 0 {
		p.silence()
	}
}

func (p *Pin2) StopTone() {
	p.remaining = 0
	p.silence()
}

// silence disconnects OC4A so the pin falls back to its PORTC level, low.
func (p *Pin2) silence() {
	p.bus.Write(addr.TCCR4A, 0)
	p.bus.Write(addr.PORTC, bit.Clear(addr.SpeakerPin2, p.bus.Read(addr.PORTC)))
}

func (p *Pin2) Freq(hz float64) uint16 {
	checkHz(hz)
	return Freq2(hz)
}

func (p *Pin2) Remaining() uint8 {
	return p.remaining
}

// SetRemaining overrides the duration counter of the current tone.
func (p *Pin2) SetRemaining(ticks uint8) {
	p.remaining = ticks
}

func (p *Pin2) Sounding() bool {
	return bit.Field(p.bus.Read(addr.TCCR4A), addr.COM4A1, addr.COM4A0) != 0
}
