//go:build tinygo && avr

package avr

import (
	"runtime/volatile"
	"unsafe"
)

// Volatile is the Bus of the real chip: every address is a memory-mapped
// register in data space.
type Volatile struct{}

func (Volatile) register(address uint16) *volatile.Register8 {
	return (*volatile.Register8)(unsafe.Pointer(uintptr(address)))
}

func (v Volatile) Read(address uint16) uint8 {
	return v.register(address).Get()
}

func (v Volatile) Write(address uint16, value uint8) {
	v.register(address).Set(value)
}

var _ Bus = Volatile{}
