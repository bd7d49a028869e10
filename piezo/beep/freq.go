package beep

// Count converts hz to the timer count that toggles a pin at twice that
// rate, given the system clock and prescaler divisor. The result is rounded
// to nearest, ties up. Nothing is range checked: out of range input wraps.
func Count(clockRate float64, prescale int, hz float64) uint16 {
	half := clockRate / float64(prescale) / 2
	return uint16(int64((half+hz/2)/hz)) - 1
}

// Hz is the inverse of Count: the frequency a count produces.
func Hz(clockRate float64, prescale int, count uint16) float64 {
	return clockRate / float64(prescale) / 2 / (float64(count) + 1)
}

// Freq1 converts hz to a count for Pin1 at ClockRate.
func Freq1(hz float64) uint16 {
	return Count(ClockRate, Prescale1, hz)
}

// Freq2 converts hz to a count for Pin2 at ClockRate.
func Freq2(hz float64) uint16 {
	return Count(ClockRate, Prescale2, hz)
}
