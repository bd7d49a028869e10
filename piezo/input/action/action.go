package action

// Action represents input actions that can be performed on the console
type Action int

const (
	// Piano keys, one octave from C up to the next C
	NoteC Action = iota
	NoteCSharp
	NoteD
	NoteDSharp
	NoteE
	NoteF
	NoteFSharp
	NoteG
	NoteGSharp
	NoteA
	NoteASharp
	NoteB
	NoteHighC

	// Piano settings
	OctaveUp
	OctaveDown
	ChannelSwitch

	// Speaker controls
	SpeakerStop
	SpeakerMuteToggle

	// Tune playback
	TunePauseToggle
	TuneRestart

	// Debug controls
	DebugLogLevelIncrease
	DebugLogLevelDecrease

	Quit
)

// IsNote reports whether a is a piano key.
func (a Action) IsNote() bool {
	return a >= NoteC && a <= NoteHighC
}

// Semitone returns the offset of a piano key above C.
func (a Action) Semitone() int {
	return int(a - NoteC)
}
