package bit

import (
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		indices  []uint8
		expected uint8
	}{
		{nil, 0},
		{[]uint8{0}, 0b00000001},
		{[]uint8{3, 1}, 0b00001010},
		{[]uint8{7, 6}, 0b11000000},
		{[]uint8{2, 2}, 0b00000100},
	}

	for _, tt := range tests {
		result := Mask(tt.indices...)
		if result != tt.expected {
			t.Errorf("Mask(%v) = %08b; want %08b", tt.indices, result, tt.expected)
		}
	}
}

func TestSetClearAssign(t *testing.T) {
	tests := []struct {
		index      uint8
		value      uint8
		set, clear uint8
	}{
		{0, 0b00000000, 0b00000001, 0b00000000},
		{6, 0b10000000, 0b11000000, 0b10000000},
		{7, 0b11111111, 0b11111111, 0b01111111},
	}

	for _, tt := range tests {
		if got := Set(tt.index, tt.value); got != tt.set {
			t.Errorf("Set(%d, %08b) = %08b; want %08b", tt.index, tt.value, got, tt.set)
		}
		if got := Clear(tt.index, tt.value); got != tt.clear {
			t.Errorf("Clear(%d, %08b) = %08b; want %08b", tt.index, tt.value, got, tt.clear)
		}
		if got := Assign(tt.index, tt.value, true); got != tt.set {
			t.Errorf("Assign(%d, %08b, true) = %08b; want %08b", tt.index, tt.value, got, tt.set)
		}
		if got := Assign(tt.index, tt.value, false); got != tt.clear {
			t.Errorf("Assign(%d, %08b, false) = %08b; want %08b", tt.index, tt.value, got, tt.clear)
		}
	}
}

func TestIsSet(t *testing.T) {
	value := uint8(0b01000010)
	for i := uint8(0); i < 8; i++ {
		want := i == 1 || i == 6
		if got := IsSet(i, value); got != want {
			t.Errorf("IsSet(%d, %08b) = %v; want %v", i, value, got, want)
		}
	}
}

func TestCombineSplit(t *testing.T) {
	tests := []struct {
		high, low uint8
		expected  uint16
	}{
		{0x03, 0xE7, 999},
		{0x00, 0x00, 0x0000},
		{0xFF, 0xFF, 0xFFFF},
		{0x12, 0x34, 0x1234},
	}

	for _, tt := range tests {
		result := Combine(tt.high, tt.low)
		if result != tt.expected {
			t.Errorf("Combine(%X, %X) = %X; want %X", tt.high, tt.low, result, tt.expected)
		}
		if High(result) != tt.high || Low(result) != tt.low {
			t.Errorf("split(%X) = %X, %X; want %X, %X", result, High(result), Low(result), tt.high, tt.low)
		}
	}
}

func TestField(t *testing.T) {
	tests := []struct {
		value, high, low uint8
		expected         uint8
	}{
		{0b11010110, 6, 4, 0b101},
		{0b11010110, 7, 0, 0b11010110},
		{0b00001111, 3, 2, 0b11},
		{0b01000000, 7, 6, 0b01},
	}

	for _, tt := range tests {
		if got := Field(tt.value, tt.high, tt.low); got != tt.expected {
			t.Errorf("Field(%08b, %d, %d) = %b; want %b", tt.value, tt.high, tt.low, got, tt.expected)
		}
	}
}
