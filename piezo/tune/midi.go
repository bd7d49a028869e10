package tune

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gitlab.com/gomidi/midi/reader"

	"github.com/valerio/go-piezo/piezo/beep"
)

// midiNote is a note with its real start and end time.
type midiNote struct {
	key        int
	start, end time.Duration
}

// noteID identifies a sounding key within a file.
type noteID struct {
	track   int16
	channel uint8
	key     uint8
}

// lane is one monophonic voice being assembled from MIDI notes.
type lane struct {
	events []Event
	end    int // frame at which the last note ends
	onTime int // frames of sound, used to rank lanes
}

// LoadMIDI reads a standard MIDI file and folds its notes into two voices at
// fps frames per second. Notes are assigned in start order, highest key
// first on ties, to whichever voice is free; notes that find both voices
// busy are dropped. The busier voice is played by channel A.
func LoadMIDI(path string, fps int) (*Tune, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}

	notes, err := readMIDINotes(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read MIDI file %s: %w", path, err)
	}

	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].start != notes[j].start {
			return notes[i].start < notes[j].start
		}
		return notes[i].key > notes[j].key
	})

	lanes := [2]lane{}
	dropped := 0
	for _, n := range notes {
		start, end := toFrame(n.start, fps), toFrame(n.end, fps)
		if end <= start {
			end = start + 1
		}

		placed := false
		for i := range lanes {
			l := &lanes[i]
			if l.end > start {
				continue
			}
			if rest := start - l.end; rest > 0 {
				l.events = append(l.events, Event{Rest: true, Ticks: rest})
			}
			l.events = append(l.events, Event{Note: KeyName(n.key), Ticks: end - start})
			l.end = end
			l.onTime += end - start
			placed = true
			break
		}
		if !placed {
			dropped++
		}
	}

	if lanes[1].onTime > lanes[0].onTime {
		lanes[0], lanes[1] = lanes[1], lanes[0]
	}
	fitLow(lanes[1].events, beep.Hz(beep.ClockRate, beep.Prescale2, beep.MaxCount2))

	slog.Debug("MIDI file imported", "path", path, "notes", len(notes), "dropped", dropped)

	return &Tune{
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		FPS:  fps,
		A:    lanes[0].events,
		B:    lanes[1].events,
	}, nil
}

// readMIDINotes collects every note of the file with its real time, tempo
// changes applied.
func readMIDINotes(path string) ([]midiNote, error) {
	var (
		rd      *reader.Reader
		notes   []midiNote
		started = map[noteID]time.Duration{}
	)

	noteOff := func(p *reader.Position, channel, key, vel uint8) {
		id := noteID{track: p.Track, channel: channel, key: key}
		start, ok := started[id]
		if !ok {
			return
		}
		delete(started, id)
		notes = append(notes, midiNote{
			key:   int(key),
			start: start,
			end:   *reader.TimeAt(rd, p.AbsoluteTicks),
		})
	}

	noteOn := func(p *reader.Position, channel, key, vel uint8) {
		if vel == 0 {
			noteOff(p, channel, key, vel)
			return
		}
		id := noteID{track: p.Track, channel: channel, key: key}
		if _, ok := started[id]; ok {
			// retriggered without a note off
			noteOff(p, channel, key, 0)
		}
		started[id] = *reader.TimeAt(rd, p.AbsoluteTicks)
	}

	rd = reader.New(reader.NoLogger(),
		reader.NoteOn(noteOn),
		reader.NoteOff(noteOff),
	)
	if err := reader.ReadSMFFile(rd, path); err != nil {
		return nil, err
	}
	return notes, nil
}

func toFrame(d time.Duration, fps int) int {
	return int(math.Round(d.Seconds() * float64(fps)))
}

// fitLow raises notes below minHz by octaves until the channel can play them.
func fitLow(events []Event, minHz float64) {
	for i := range events {
		if events[i].Note == "" {
			continue
		}
		key, _ := NoteKey(events[i].Note)
		for KeyHz(key) < minHz {
			key += 12
		}
		events[i].Note = KeyName(key)
	}
}
