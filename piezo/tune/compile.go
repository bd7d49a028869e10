package tune

import (
	"math"

	"github.com/valerio/go-piezo/piezo/beep"
)

// maxStepTicks is the longest duration a single PlayToneFor call accepts.
const maxStepTicks = math.MaxUint8

// Step is one compiled tone or rest, with the count already converted for
// the channel that will play it.
type Step struct {
	Count uint16
	Ticks uint8
	Rest  bool
}

// Track is the compiled form of one voice.
type Track []Step

// Frames returns the length of the track in frames.
func (t Track) Frames() int {
	total := 0
	for _, s := range t {
		total += int(s.Ticks)
	}
	return total
}

// Compile converts both voices into tracks, voice A with Freq1 and voice B
// with Freq2. Counts are computed here once so playback does no float math.
func (t *Tune) Compile() (a, b Track, err error) {
	if err := t.Validate(); err != nil {
		return nil, nil, err
	}
	return compile(t.A, beep.Freq1), compile(t.B, beep.Freq2), nil
}

func compile(events []Event, freq func(float64) uint16) Track {
	track := make(Track, 0, len(events))
	for _, e := range events {
		var count uint16
		if !e.Rest {
			count = freq(e.hz())
		}
		for left := e.Ticks; left > 0; left -= maxStepTicks {
			track = append(track, Step{
				Count: count,
				Ticks: uint8(min(left, maxStepTicks)),
				Rest:  e.Rest,
			})
		}
	}
	return track
}
