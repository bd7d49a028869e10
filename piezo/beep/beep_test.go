package beep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-piezo/piezo/addr"
	"github.com/valerio/go-piezo/piezo/avr"
	"github.com/valerio/go-piezo/piezo/beep"
	"github.com/valerio/go-piezo/piezo/bit"
)

type channelCase struct {
	name  string
	pin   uint8
	count uint16
	new   func(bus avr.Bus) beep.Channel
}

var channelCases = []channelCase{
	{
		name:  "pin1",
		pin:   addr.SpeakerPin1,
		count: beep.Freq1(1000),
		new:   func(bus avr.Bus) beep.Channel { return beep.NewPin1(bus) },
	},
	{
		name:  "pin2",
		pin:   addr.SpeakerPin2,
		count: beep.Freq2(1000),
		new:   func(bus avr.Bus) beep.Channel { return beep.NewPin2(bus) },
	},
}

func setup(t *testing.T, tc channelCase) (beep.Channel, *avr.MCU) {
	t.Helper()
	m := avr.New(avr.DefaultClockRate)
	ch := tc.new(m)
	ch.Begin()
	return ch, m
}

func TestChannel_Begin(t *testing.T) {
	for _, tc := range channelCases {
		t.Run(tc.name, func(t *testing.T) {
			ch, m := setup(t, tc)

			assert.Equal(t, uint8(0), ch.Remaining())
			assert.False(t, ch.Sounding())
			assert.Equal(t, avr.Low, m.PinLevel(tc.pin), "pin is an output driven low")

			// idempotent
			ch.PlayToneFor(tc.count, 10)
			ch.Begin()
			assert.Equal(t, uint8(0), ch.Remaining())
			assert.False(t, ch.Sounding())
			assert.Equal(t, avr.Low, m.PinLevel(tc.pin))
		})
	}
}

func TestChannel_ContinuousToneIgnoresTick(t *testing.T) {
	for _, tc := range channelCases {
		t.Run(tc.name, func(t *testing.T) {
			ch, _ := setup(t, tc)

			ch.PlayTone(tc.count)
			for i := 0; i < 254; i++ {
				ch.Tick()
				require.True(t, ch.Sounding(), "tick %d stopped a continuous tone", i+1)
			}
			assert.Equal(t, uint8(0), ch.Remaining())
		})
	}
}

func TestChannel_TimedToneStopsOnLastTick(t *testing.T) {
	for _, tc := range channelCases {
		for _, n := range []uint8{1, 2, 30, 100, 255} {
			t.Run(tc.name, func(t *testing.T) {
				ch, m := setup(t, tc)

				ch.PlayToneFor(tc.count, n)
				assert.Equal(t, n, ch.Remaining())

				for i := uint8(1); i < n; i++ {
					ch.Tick()
					require.True(t, ch.Sounding(), "stopped early after %d of %d ticks", i, n)
				}
				assert.Equal(t, uint8(1), ch.Remaining())

				ch.Tick()
				assert.False(t, ch.Sounding(), "still sounding after %d ticks", n)
				assert.Equal(t, uint8(0), ch.Remaining())
				assert.Equal(t, avr.Low, m.PinLevel(tc.pin))

				// further ticks are no-ops
				ch.Tick()
				assert.Equal(t, uint8(0), ch.Remaining())
				assert.False(t, ch.Sounding())
			})
		}
	}
}

func TestChannel_ZeroDurationIsContinuous(t *testing.T) {
	for _, tc := range channelCases {
		t.Run(tc.name, func(t *testing.T) {
			ch, _ := setup(t, tc)

			ch.PlayToneFor(tc.count, 0)
			for i := 0; i < 300; i++ {
				ch.Tick()
			}
			assert.True(t, ch.Sounding())
		})
	}
}

func TestChannel_PlayToneClearsDuration(t *testing.T) {
	for _, tc := range channelCases {
		t.Run(tc.name, func(t *testing.T) {
			ch, _ := setup(t, tc)

			ch.PlayToneFor(tc.count, 5)
			ch.PlayTone(tc.count)
			assert.Equal(t, uint8(0), ch.Remaining())

			for i := 0; i < 10; i++ {
				ch.Tick()
			}
			assert.True(t, ch.Sounding(), "timed tone became continuous")
		})
	}
}

func TestChannel_StopTone(t *testing.T) {
	for _, tc := range channelCases {
		t.Run(tc.name, func(t *testing.T) {
			ch, m := setup(t, tc)

			// already silent
			ch.StopTone()
			assert.False(t, ch.Sounding())
			assert.Equal(t, uint8(0), ch.Remaining())

			ch.PlayToneFor(tc.count, 50)
			m.Tick(1000000)
			ch.StopTone()
			assert.False(t, ch.Sounding())
			assert.Equal(t, uint8(0), ch.Remaining())
			assert.Equal(t, avr.Low, m.PinLevel(tc.pin), "pin rests low")

			ch.StopTone()
			assert.False(t, ch.Sounding())
			assert.Equal(t, uint8(0), ch.Remaining())
		})
	}
}

func TestChannel_SetRemaining(t *testing.T) {
	m := avr.New(avr.DefaultClockRate)
	p := beep.NewPin1(m)
	p.Begin()

	p.PlayTone(999)
	p.SetRemaining(2)
	p.Tick()
	assert.True(t, p.Sounding())
	p.Tick()
	assert.False(t, p.Sounding())
}

func TestPin1_Scenario(t *testing.T) {
	t.Run("100 ticks", func(t *testing.T) {
		m := avr.New(avr.DefaultClockRate)
		p := beep.NewPin1(m)
		p.Begin()

		p.PlayToneFor(999, 100)
		for i := 0; i < 100; i++ {
			p.Tick()
		}
		assert.False(t, p.Sounding())
	})

	t.Run("99 ticks", func(t *testing.T) {
		m := avr.New(avr.DefaultClockRate)
		p := beep.NewPin1(m)
		p.Begin()

		p.PlayToneFor(999, 100)
		for i := 0; i < 99; i++ {
			p.Tick()
		}
		assert.True(t, p.Sounding())
		assert.Equal(t, uint8(1), p.Remaining())
	})
}

func TestPin1_Registers(t *testing.T) {
	m := avr.New(avr.DefaultClockRate)
	p := beep.NewPin1(m)
	p.Begin()

	assert.Equal(t, bit.Mask(addr.WGM32, addr.CS31), m.Read(addr.TCCR3B))
	assert.Equal(t, uint8(0), m.Read(addr.TCCR3A))

	p.PlayTone(0xABCD)
	assert.Equal(t, bit.Mask(addr.COM3A0), m.Read(addr.TCCR3A))
	assert.Equal(t, uint16(0xABCD), bit.Combine(m.Read(addr.OCR3AH), m.Read(addr.OCR3AL)))

	// replacing a playing tone loads the new count straight away
	p.PlayTone(999)
	assert.Equal(t, uint16(999), bit.Combine(m.Read(addr.OCR3AH), m.Read(addr.OCR3AL)))
}

func TestPin2_Registers(t *testing.T) {
	m := avr.New(avr.DefaultClockRate)
	p := beep.NewPin2(m)
	p.Begin()

	assert.Equal(t, bit.Mask(addr.CS43), m.Read(addr.TCCR4B))
	assert.Equal(t, uint8(0), m.Read(addr.TCCR4D))
	assert.Equal(t, uint8(0), m.Read(addr.OCR4A))

	p.PlayTone(1023)
	assert.Equal(t, bit.Mask(addr.COM4A0), m.Read(addr.TCCR4A))
	low := m.Read(addr.OCR4C)
	assert.Equal(t, uint16(1023), bit.Combine(m.Read(addr.TC4H), low))
}

func TestChannel_OutputFrequency(t *testing.T) {
	tests := []struct {
		name string
		pin  uint8
		new  func(bus avr.Bus) beep.Channel
		hz   float64
	}{
		{"pin1 440Hz", addr.SpeakerPin1, func(bus avr.Bus) beep.Channel { return beep.NewPin1(bus) }, 440},
		{"pin1 1000Hz", addr.SpeakerPin1, func(bus avr.Bus) beep.Channel { return beep.NewPin1(bus) }, 1000},
		{"pin2 250Hz", addr.SpeakerPin2, func(bus avr.Bus) beep.Channel { return beep.NewPin2(bus) }, 250},
		{"pin2 1000Hz", addr.SpeakerPin2, func(bus avr.Bus) beep.Channel { return beep.NewPin2(bus) }, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := avr.New(avr.DefaultClockRate)
			ch := tt.new(m)
			ch.Begin()
			ch.PlayTone(ch.Freq(tt.hz))

			edges := 0
			last := m.PinLevel(tt.pin)
			for i := 0; i < avr.DefaultClockRate/500; i++ {
				m.Tick(500)
				if level := m.PinLevel(tt.pin); level != last {
					edges++
					last = level
				}
			}
			// two edges per cycle, within the channel's resolution
			assert.InDelta(t, 2*tt.hz, float64(edges), 2*tt.hz*0.01+2)
		})
	}
}

func TestChannels_Independent(t *testing.T) {
	m := avr.New(avr.DefaultClockRate)
	a := beep.NewPin1(m)
	b := beep.NewPin2(m)
	a.Begin()
	b.Begin()

	a.PlayToneFor(a.Freq(880), 2)
	b.PlayTone(b.Freq(440))

	a.Tick()
	a.Tick()
	assert.False(t, a.Sounding())
	assert.True(t, b.Sounding())

	b.StopTone()
	a.PlayTone(a.Freq(880))
	assert.True(t, a.Sounding())
	assert.False(t, b.Sounding())
}

func TestChannel_IgnoresMuteState(t *testing.T) {
	for _, tc := range channelCases {
		t.Run(tc.name, func(t *testing.T) {
			ch, m := setup(t, tc)

			// muted: the speaker pins are inputs
			m.Write(addr.DDRC, bit.Clear(tc.pin, m.Read(addr.DDRC)))
			ch.PlayToneFor(tc.count, 3)
			assert.True(t, ch.Sounding())
			assert.Equal(t, avr.Floating, m.PinLevel(tc.pin))

			ch.Tick()
			m.Write(addr.DDRC, bit.Set(tc.pin, m.Read(addr.DDRC)))
			assert.NotEqual(t, avr.Floating, m.PinLevel(tc.pin))
			assert.Equal(t, uint8(2), ch.Remaining(), "countdown continues while muted")
		})
	}
}
