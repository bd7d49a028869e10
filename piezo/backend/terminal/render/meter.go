package render

// Meter returns a bar of width cells filled in proportion to value/max.
func Meter(value, max float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if max > 0 && value > 0 {
		filled = int(value/max*float64(width) + 0.5)
	}
	filled = min(filled, width)

	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}

// Truncate shortens s to width cells, marking the cut with "..."
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width > 3 {
		return string(r[:width-3]) + "..."
	}
	if width > 0 {
		return string(r[:width])
	}
	return ""
}

// Wave returns a square wave drawn with box characters, one cycle every
// period cells, or a flat line if period is 0.
func Wave(period, width int) string {
	line := make([]rune, width)
	for i := range line {
		switch {
		case period < 2:
			line[i] = '─'
		case i%period < period/2:
			line[i] = '▀'
		default:
			line[i] = '▄'
		}
	}
	return string(line)
}
