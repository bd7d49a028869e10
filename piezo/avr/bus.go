package avr

// Bus gives byte-wide access to the I/O register file by data-space address.
// Writes to 16 bit registers follow the hardware access order: high byte
// (or TC4H) first, then the low byte, which commits the full value.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Level is the electrical state of a port pin.
type Level int

const (
	// Floating means the pin is an input and drives nothing.
	Floating Level = iota
	Low
	High
)

func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case High:
		return "high"
	default:
		return "floating"
	}
}

var _ Bus = (*MCU)(nil)
