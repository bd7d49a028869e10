package avr

// prescaler divides the system clock down to timer ticks, carrying the
// cycles that have not yet produced a full tick.
type prescaler struct {
	remainder uint64
}

// step consumes cycles and returns the number of timer ticks produced.
// A divisor of 0 means the clock source is stopped.
func (p *prescaler) step(cycles uint64, divisor uint64) uint64 {
	if divisor == 0 {
		return 0
	}
	total := p.remainder + cycles
	p.remainder = total % divisor
	return total / divisor
}

// advance moves a counter n ticks forward. The counter clears to 0 after
// reaching top; if it starts above top (top was lowered under it) it first
// runs on to max and wraps. It returns the new value and how many times the
// counter landed on match.
func advance(value uint32, n uint64, top, max, match uint32) (uint32, uint64) {
	var hits uint64

	if value > top {
		toWrap := uint64(max-value) + 1
		if n < toWrap {
			if match > value && uint64(match-value) <= n {
				hits++
			}
			return value + uint32(n), hits
		}
		if match > value {
			hits++
		}
		if match == 0 {
			hits++
		}
		n -= toWrap
		value = 0
	}

	period := uint64(top) + 1
	if uint64(match) < period {
		first := (uint64(match) + period - uint64(value)) % period
		if first == 0 {
			first = period
		}
		if n >= first {
			hits += 1 + (n-first)/period
		}
	}

	return uint32((uint64(value) + n) % period), hits
}

// compareOutput applies a COMnx1:0 setting to an output compare flip-flop
// after hits compare matches.
func compareOutput(mode uint8, level bool, hits uint64) bool {
	if hits == 0 {
		return level
	}
	switch mode {
	case 1: // toggle
		if hits%2 == 1 {
			return !level
		}
		return level
	case 2: // clear
		return false
	case 3: // set
		return true
	default:
		return level
	}
}
