package avr

import (
	"github.com/valerio/go-piezo/piezo/addr"
	"github.com/valerio/go-piezo/piezo/bit"
)

// timer3Divisors maps the CS32:0 clock select to the prescaler divisor.
// Selections 6 and 7 clock from the T3 pin, which is not wired, so the
// timer never advances.
var timer3Divisors = [8]uint64{0, 1, 8, 64, 256, 1024, 0, 0}

// Timer3 models the 16 bit Timer/Counter3 in normal and CTC modes, with
// output compare unit A driving OC3A (PC6).
type Timer3 struct {
	tccrA uint8
	tccrB uint8
	tccrC uint8
	tcnt  uint16
	ocrA  uint16

	// temp is the shared TEMP register used for atomic 16 bit access.
	temp uint8

	pre prescaler
	oc  bool
}

// Reset restores the power-on register values.
func (t *Timer3) Reset() {
	*t = Timer3{}
}

func (t *Timer3) wgm() uint8 {
	return bit.Field(t.tccrB, 4, 3)<<2 | bit.Field(t.tccrA, 1, 0)
}

func (t *Timer3) top() uint32 {
	if t.wgm() == 4 { // CTC, TOP = OCR3A
		return uint32(t.ocrA)
	}
	return 0xFFFF
}

// comA returns the COM3A1:0 compare output mode.
func (t *Timer3) comA() uint8 {
	return bit.Field(t.tccrA, addr.COM3A1, addr.COM3A0)
}

// Connected reports whether OC3A overrides the port pin.
func (t *Timer3) Connected() bool {
	return t.comA() != 0
}

// Output returns the level of the OC3A flip-flop.
func (t *Timer3) Output() bool {
	return t.oc
}

func (t *Timer3) Tick(cycles uint64) {
	ticks := t.pre.step(cycles, timer3Divisors[t.tccrB&0x07])
	if ticks == 0 {
		return
	}

	value, hits := advance(uint32(t.tcnt), ticks, t.top(), 0xFFFF, uint32(t.ocrA))
	t.tcnt = uint16(value)
	t.oc = compareOutput(t.comA(), t.oc, hits)
}

func (t *Timer3) Read(address uint16) uint8 {
	switch address {
	case addr.TCCR3A:
		return t.tccrA
	case addr.TCCR3B:
		return t.tccrB
	case addr.TCCR3C:
		return t.tccrC
	case addr.TCNT3L:
		t.temp = bit.High(t.tcnt)
		return bit.Low(t.tcnt)
	case addr.OCR3AL:
		// OCR3A is not double buffered through TEMP on reads
		return bit.Low(t.ocrA)
	case addr.OCR3AH:
		return bit.High(t.ocrA)
	case addr.TCNT3H:
		return t.temp
	default:
		return 0xFF
	}
}

func (t *Timer3) Write(address uint16, value uint8) {
	switch address {
	case addr.TCCR3A:
		t.tccrA = value
	case addr.TCCR3B:
		t.tccrB = value
	case addr.TCCR3C:
		// FOC3A forces a compare match without clearing the counter
		if bit.IsSet(7, value) {
			t.oc = compareOutput(t.comA(), t.oc, 1)
		}
	case addr.TCNT3H, addr.OCR3AH:
		t.temp = value
	case addr.TCNT3L:
		t.tcnt = bit.Combine(t.temp, value)
	case addr.OCR3AL:
		t.ocrA = bit.Combine(t.temp, value)
	}
}
