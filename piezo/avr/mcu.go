package avr

import (
	"log/slog"

	"github.com/valerio/go-piezo/piezo/addr"
)

// DefaultClockRate is the system clock of the console, in Hz.
const DefaultClockRate = 16000000

// ioSize covers the register file and the extended I/O space.
const ioSize = 0x100

// MCU is a host-side model of the sound related peripherals of an
// ATmega32U4: port C and timers 3 and 4. Registers it does not model are
// kept as plain storage so that read-after-write still holds.
type MCU struct {
	clockRate uint32
	cycles    uint64

	portC  Port
	timer3 Timer3
	timer4 Timer4

	io [ioSize]uint8
}

// New returns an MCU in its power-on state clocked at clockRate Hz.
func New(clockRate uint32) *MCU {
	m := &MCU{clockRate: clockRate}
	m.Reset()
	return m
}

// Reset restores the power-on state of every modelled peripheral.
func (m *MCU) Reset() {
	m.cycles = 0
	m.portC = Port{}
	m.timer3.Reset()
	m.timer4.Reset()
	m.io = [ioSize]uint8{}
}

// ClockRate returns the system clock in Hz.
func (m *MCU) ClockRate() uint32 {
	return m.clockRate
}

// Cycles returns the number of system clock cycles elapsed since Reset.
func (m *MCU) Cycles() uint64 {
	return m.cycles
}

// Tick advances every timer by the given number of system clock cycles.
func (m *MCU) Tick(cycles int) {
	if cycles <= 0 {
		return
	}
	m.cycles += uint64(cycles)
	m.timer3.Tick(uint64(cycles))
	m.timer4.Tick(uint64(cycles))
}

func (m *MCU) Read(address uint16) uint8 {
	switch {
	case address == addr.PINC:
		return m.portC.pins(m.driven)
	case address == addr.DDRC:
		return m.portC.ddr
	case address == addr.PORTC:
		return m.portC.port
	case address >= addr.TCCR3A && address <= addr.OCR3AH:
		return m.timer3.Read(address)
	case isTimer4(address):
		return m.timer4.Read(address)
	case address < ioSize:
		return m.io[address]
	default:
		slog.Debug("Read outside I/O space", "address", address)
		return 0
	}
}

func (m *MCU) Write(address uint16, value uint8) {
	switch {
	case address == addr.PINC:
		// writing a one to PINx toggles the matching PORTx bit
		m.portC.port ^= value
	case address == addr.DDRC:
		m.portC.ddr = value
	case address == addr.PORTC:
		m.portC.port = value
	case address >= addr.TCCR3A && address <= addr.OCR3AH:
		m.timer3.Write(address, value)
	case isTimer4(address):
		m.timer4.Write(address, value)
	case address < ioSize:
		m.io[address] = value
	default:
		slog.Debug("Write outside I/O space", "address", address, "value", value)
	}
}

// isTimer4 reports whether address belongs to Timer/Counter4, whose
// registers are interleaved with the USART in the extended I/O space.
func isTimer4(address uint16) bool {
	switch {
	case address == addr.TCNT4, address == addr.TC4H:
		return true
	case address >= addr.TCCR4A && address <= addr.TCCR4D:
		return true
	case address >= addr.OCR4A && address <= addr.OCR4C:
		return true
	}
	return false
}

// driven returns the level a port C pin would drive if it were an output.
// The compare output units override PORTC on the speaker pins.
func (m *MCU) driven(pin uint8) bool {
	switch {
	case pin == addr.SpeakerPin1 && m.timer3.Connected():
		return m.timer3.Output()
	case pin == addr.SpeakerPin2 && m.timer4.Connected():
		return m.timer4.Output()
	default:
		return m.portC.Data(pin)
	}
}

// PinLevel returns the electrical state of a port C pin.
func (m *MCU) PinLevel(pin uint8) Level {
	if !m.portC.Output(pin) {
		return Floating
	}
	if m.driven(pin) {
		return High
	}
	return Low
}

// SpeakerLevel returns the drive across the piezo, which sits between the
// two speaker pins: +1, -1 or 0. If either pin floats no current flows.
func (m *MCU) SpeakerLevel() int {
	p1 := m.PinLevel(addr.SpeakerPin1)
	p2 := m.PinLevel(addr.SpeakerPin2)
	if p1 == Floating || p2 == Floating {
		return 0
	}
	level := 0
	if p1 == High {
		level++
	}
	if p2 == High {
		level--
	}
	return level
}
