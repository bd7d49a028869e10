package bit

// Mask returns a byte with every listed bit set, e.g. Mask(3, 1) == 0b1010.
func Mask(indices ...uint8) uint8 {
	var m uint8
	for _, i := range indices {
		m |= 1 << i
	}
	return m
}

// IsSet reports whether the bit at index is 1.
func IsSet(index, value uint8) bool {
	return (value>>index)&1 == 1
}

// Set returns value with the bit at index set to 1.
func Set(index, value uint8) uint8 {
	return value | (1 << index)
}

// Clear returns value with the bit at index set to 0.
func Clear(index, value uint8) uint8 {
	return value &^ (1 << index)
}

// Assign sets or clears the bit at index depending on on.
func Assign(index, value uint8, on bool) uint8 {
	if on {
		return Set(index, value)
	}
	return Clear(index, value)
}

// Combine joins a high and low byte into a 16 bit value.
func Combine(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Low returns the least significant byte of value.
func Low(value uint16) uint8 {
	return uint8(value)
}

// High returns the most significant byte of value.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}

// Field extracts bits highBit..lowBit (inclusive), shifted down to bit 0.
// Field(0b11010110, 6, 4) == 0b101.
func Field(value, highBit, lowBit uint8) uint8 {
	width := highBit - lowBit + 1
	return (value >> lowBit) & uint8((1<<width)-1)
}
