package input

import "github.com/valerio/go-piezo/piezo/input/action"

// DefaultKeyMap lays the piano out on the bottom two letter rows, tracker
// style, and puts the controls where they do not collide with it.
var DefaultKeyMap = map[string]action.Action{
	// white keys
	"z": action.NoteC,
	"x": action.NoteD,
	"c": action.NoteE,
	"v": action.NoteF,
	"b": action.NoteG,
	"n": action.NoteA,
	"m": action.NoteB,
	",": action.NoteHighC,

	// black keys
	"s": action.NoteCSharp,
	"d": action.NoteDSharp,
	"g": action.NoteFSharp,
	"h": action.NoteGSharp,
	"j": action.NoteASharp,

	"Up":   action.OctaveUp,
	"Down": action.OctaveDown,
	"Tab":  action.ChannelSwitch,

	"Space": action.SpeakerStop,
	"0":     action.SpeakerStop,
	"a":     action.SpeakerMuteToggle,

	"p":     action.TunePauseToggle,
	"Enter": action.TunePauseToggle,
	"r":     action.TuneRestart,

	"+": action.DebugLogLevelIncrease,
	"=": action.DebugLogLevelIncrease,
	"-": action.DebugLogLevelDecrease,
	"_": action.DebugLogLevelDecrease,

	"Escape": action.Quit,
	"q":      action.Quit,
}

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
