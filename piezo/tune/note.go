package tune

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// semitones of the natural notes from C.
var semitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// NoteKey parses scientific pitch notation ("A4", "C#5", "Bb3") into a MIDI
// key number, where C4 is 60 and A4 is 69.
func NoteKey(name string) (int, error) {
	s := strings.TrimSpace(name)
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
	}

	semi, ok := semitones[byte(strings.ToUpper(s[:1])[0])]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
	}
	s = s[1:]

	switch s[0] {
	case '#':
		semi++
		s = s[1:]
	case 'b':
		semi--
		s = s[1:]
	}

	octave, err := strconv.Atoi(s)
	if err != nil || octave < -1 || octave > 9 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
	}

	return (octave+1)*12 + semi, nil
}

// NoteHz returns the equal temperament frequency of a note name, A4 = 440 Hz.
func NoteHz(name string) (float64, error) {
	key, err := NoteKey(name)
	if err != nil {
		return 0, err
	}
	return KeyHz(key), nil
}

// KeyHz returns the frequency of a MIDI key number.
func KeyHz(key int) float64 {
	return 440 * math.Pow(2, float64(key-69)/12)
}

var keyNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// KeyName returns the name of a MIDI key number in scientific pitch
// notation, using sharps.
func KeyName(key int) string {
	octave := key/12 - 1
	semi := key % 12
	if semi < 0 {
		semi += 12
		octave--
	}
	return keyNames[semi] + strconv.Itoa(octave)
}

// NearestKey returns the MIDI key number closest to hz.
func NearestKey(hz float64) int {
	return int(math.Round(69 + 12*math.Log2(hz/440)))
}
