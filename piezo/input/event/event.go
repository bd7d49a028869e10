package event

// Type tells how an input changed
type Type int

const (
	Press   Type = iota // key went down
	Release             // key went up, not every backend reports it
	Hold                // repeated while the key is down
)

func (t Type) String() string {
	switch t {
	case Press:
		return "press"
	case Release:
		return "release"
	case Hold:
		return "hold"
	default:
		return "unknown"
	}
}
