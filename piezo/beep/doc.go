// Package beep plays square wave tones on the console's piezo speaker using
// the timer/counter peripherals to toggle the speaker pins directly. Once a
// tone is started no CPU time is spent generating it and no interrupts are
// used.
//
// There are two independent channels:
//
//   - Pin1 (channel A) uses the 16 bit Timer/Counter3 at clk/8 and drives
//     speaker pin 1 (PC6). Counts 0..65535, 15.26 Hz to 1 MHz at 16 MHz.
//   - Pin2 (channel B) uses the 10 bit Timer/Counter4 at clk/128 and drives
//     speaker pin 2 (PC7). Counts 3..1023, 61.04 Hz to 15625 Hz at 16 MHz.
//
// Using both channels at once plays two tones together. Each channel must
// be set up with Begin, and its Tick method called at a fixed interval,
// normally once per frame. A tone's duration is the number of Tick calls it
// lasts: at 60 frames per second a duration of 30 is half a second.
//
// A tone's pitch is given as the raw count loaded into the timer. Freq1 and
// Freq2 convert a frequency in Hz to the nearest count:
//
//	count = (clock / prescale / 2) / hz - 1
//	hz    = (clock / prescale / 2) / (count + 1)
//
// Counts are not validated. A frequency outside a channel's range produces
// a wrapped or out of range count and the wrong pitch. The conversion uses
// floating point math every time it is called, so compute counts once, for
// example into package level variables, rather than per frame. Building
// with the beepdebug tag logs a warning for counts outside a channel's
// range.
//
// Mute control is not handled here. The mute package switches the speaker
// pins to inputs to silence them, and nothing in this package undoes that.
//
// Channels are not safe for concurrent use. Pin1 and Pin2 share no state
// and can be driven from different goroutines.
package beep
