package avr

import (
	"github.com/valerio/go-piezo/piezo/addr"
	"github.com/valerio/go-piezo/piezo/bit"
)

// tenBitMask keeps the 10 bit resolution of Timer/Counter4.
const tenBitMask = 0x3FF

// Timer4 models the 10 bit high speed Timer/Counter4 in normal mode, where
// the counter clears after matching OCR4C, with output compare unit A
// driving OC4A (PC7).
type Timer4 struct {
	tccrA uint8
	tccrB uint8
	tccrC uint8
	tccrD uint8
	tc4h  uint8
	tcnt  uint16
	ocrA  uint16
	ocrB  uint16
	ocrC  uint16

	pre prescaler
	oc  bool
}

// Reset restores the power-on register values.
func (t *Timer4) Reset() {
	*t = Timer4{ocrC: 0xFF}
}

// divisor decodes CS43:0. Each step doubles the division, 0 stops the clock.
func (t *Timer4) divisor() uint64 {
	cs := t.tccrB & 0x0F
	if cs == 0 {
		return 0
	}
	return 1 << (cs - 1)
}

// comA returns the COM4A1:0 compare output mode.
func (t *Timer4) comA() uint8 {
	return bit.Field(t.tccrA, addr.COM4A1, addr.COM4A0)
}

// Connected reports whether OC4A overrides the port pin.
func (t *Timer4) Connected() bool {
	return t.comA() != 0
}

// Output returns the level of the OC4A flip-flop.
func (t *Timer4) Output() bool {
	return t.oc
}

func (t *Timer4) Tick(cycles uint64) {
	ticks := t.pre.step(cycles, t.divisor())
	if ticks == 0 {
		return
	}

	value, hits := advance(uint32(t.tcnt), ticks, uint32(t.ocrC), tenBitMask, uint32(t.ocrA))
	t.tcnt = uint16(value)
	t.oc = compareOutput(t.comA(), t.oc, hits)
}

// load10 commits a 10 bit register write using TC4H as the high bits.
func (t *Timer4) load10(low uint8) uint16 {
	return bit.Combine(t.tc4h&0x03, low) & tenBitMask
}

// read10 returns the low byte of a 10 bit register and latches its high
// bits into TC4H.
func (t *Timer4) read10(value uint16) uint8 {
	t.tc4h = bit.High(value) & 0x03
	return bit.Low(value)
}

func (t *Timer4) Read(address uint16) uint8 {
	switch address {
	case addr.TCCR4A:
		return t.tccrA
	case addr.TCCR4B:
		return t.tccrB
	case addr.TCCR4C:
		return t.tccrC
	case addr.TCCR4D:
		return t.tccrD
	case addr.TC4H:
		return t.tc4h
	case addr.TCNT4:
		return t.read10(t.tcnt)
	case addr.OCR4A:
		return t.read10(t.ocrA)
	case addr.OCR4B:
		return t.read10(t.ocrB)
	case addr.OCR4C:
		return t.read10(t.ocrC)
	default:
		return 0xFF
	}
}

func (t *Timer4) Write(address uint16, value uint8) {
	switch address {
	case addr.TCCR4A:
		t.tccrA = value
	case addr.TCCR4B:
		t.tccrB = value
	case addr.TCCR4C:
		t.tccrC = value
	case addr.TCCR4D:
		t.tccrD = value
	case addr.TC4H:
		t.tc4h = value & 0x07
	case addr.TCNT4:
		t.tcnt = t.load10(value)
	case addr.OCR4A:
		t.ocrA = t.load10(value)
	case addr.OCR4B:
		t.ocrB = t.load10(value)
	case addr.OCR4C:
		t.ocrC = t.load10(value)
	}
}
