package avr

import (
	"github.com/valerio/go-piezo/piezo/bit"
)

// Port models the DDRx/PORTx/PINx register triple of one I/O port.
type Port struct {
	ddr  uint8
	port uint8
}

// Output reports whether pin is configured as an output.
func (p *Port) Output(pin uint8) bool {
	return bit.IsSet(pin, p.ddr)
}

// Data returns the PORTx bit for pin.
func (p *Port) Data(pin uint8) bool {
	return bit.IsSet(pin, p.port)
}

// pins computes PINx. Outputs read back their driven level, inputs read
// low since nothing external drives the speaker pins.
func (p *Port) pins(driven func(pin uint8) bool) uint8 {
	var v uint8
	for i := uint8(0); i < 8; i++ {
		if p.Output(i) && driven(i) {
			v = bit.Set(i, v)
		}
	}
	return v
}
