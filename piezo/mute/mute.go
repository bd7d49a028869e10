// Package mute switches the speaker on and off by changing the direction of
// the speaker pins: outputs play, inputs float and silence the piezo. It
// never touches the timers, so tone drivers keep running while muted.
package mute

import (
	"log/slog"

	"github.com/valerio/go-piezo/piezo/addr"
	"github.com/valerio/go-piezo/piezo/avr"
	"github.com/valerio/go-piezo/piezo/bit"
)

// speakerPins is the DDRC mask of both speaker pins.
var speakerPins = bit.Mask(addr.SpeakerPin1, addr.SpeakerPin2)

// Audio controls the mute state of the speaker.
type Audio struct {
	bus     avr.Bus
	enabled bool
}

// New returns an Audio for the registers on bus. The speaker starts in
// whatever state the pins are in; call Begin to apply one.
func New(bus avr.Bus) *Audio {
	return &Audio{bus: bus}
}

// Begin applies the initial mute state.
func (a *Audio) Begin(enabled bool) {
	if enabled {
		a.On()
	} else {
		a.Off()
	}
}

// On unmutes the speaker by making both speaker pins outputs.
func (a *Audio) On() {
	a.bus.Write(addr.DDRC, a.bus.Read(addr.DDRC)|speakerPins)
	a.enabled = true
	slog.Debug("Audio on")
}

// Off mutes the speaker by making both speaker pins inputs.
func (a *Audio) Off() {
	a.bus.Write(addr.DDRC, a.bus.Read(addr.DDRC)&^speakerPins)
	a.enabled = false
	slog.Debug("Audio off")
}

// Toggle flips the mute state.
func (a *Audio) Toggle() {
	if a.enabled {
		a.Off()
	} else {
		a.On()
	}
}

// Enabled reports whether sound is on.
func (a *Audio) Enabled() bool {
	return a.enabled
}
