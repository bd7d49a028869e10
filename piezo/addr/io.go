package addr

// Data-space addresses of the ATmega32U4 I/O registers used for sound.
// Reference: ATmega16U4/32U4 datasheet, "Register Summary".

// Port C, which carries both speaker pins.
const (
	PINC  uint16 = 0x26 // Port C input pins
	DDRC  uint16 = 0x27 // Port C data direction
	PORTC uint16 = 0x28 // Port C data
)

// Timer/Counter3 - 16 bit.
const (
	TCCR3A uint16 = 0x90 // Control register A (COM3x, WGM31:30)
	TCCR3B uint16 = 0x91 // Control register B (WGM33:32, CS3x)
	TCCR3C uint16 = 0x92 // Control register C (force output compare)
	TCNT3L uint16 = 0x94 // Counter low byte
	TCNT3H uint16 = 0x95 // Counter high byte
	OCR3AL uint16 = 0x98 // Output compare A low byte
	OCR3AH uint16 = 0x99 // Output compare A high byte
)

// Timer/Counter4 - 10 bit high speed.
const (
	TCNT4  uint16 = 0xBE // Counter low byte
	TC4H   uint16 = 0xBF // Shared high byte (bits 1-0) for 10 bit access
	TCCR4A uint16 = 0xC0 // Control register A (COM4A, COM4B, PWM4x)
	TCCR4B uint16 = 0xC1 // Control register B (CS4x)
	TCCR4C uint16 = 0xC2 // Control register C
	TCCR4D uint16 = 0xC3 // Control register D (WGM41:40)
	OCR4A  uint16 = 0xCF // Output compare A low byte
	OCR4B  uint16 = 0xD0 // Output compare B low byte
	OCR4C  uint16 = 0xD1 // Output compare C low byte, timer TOP
)

// Bit positions.
const (
	// Port C pins wired to the piezo speaker.
	SpeakerPin1 uint8 = 6 // PC6, OC3A
	SpeakerPin2 uint8 = 7 // PC7, OC4A

	// TCCR3A
	COM3A1 uint8 = 7
	COM3A0 uint8 = 6

	// TCCR3B
	WGM32 uint8 = 3
	CS32  uint8 = 2
	CS31  uint8 = 1
	CS30  uint8 = 0

	// TCCR4A
	COM4A1 uint8 = 7
	COM4A0 uint8 = 6
	PWM4A  uint8 = 1

	// TCCR4B
	CS43 uint8 = 3
	CS42 uint8 = 2
	CS41 uint8 = 1
	CS40 uint8 = 0
)
