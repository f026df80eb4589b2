package dht22

// Protocol timing, from the AM2302/DHT22 datasheet. Deadlines carry a few
// tens of microseconds of slack beyond the nominal figures so that sampling
// granularity and clock jitter do not produce false timeouts.
const (
	// The host start signal must hold the line low for at least 1ms
	// (datasheet: 1-10ms typical).
	startHoldLow Microseconds = 1100

	// After release the sensor pulls the line low within 20-40us.
	ackBeginDeadline Microseconds = 100
	// Handshake low and high phases are ~80us each.
	ackLowDeadline  Microseconds = 120
	ackHighDeadline Microseconds = 120

	// Per-bit low preamble is a fixed ~50us.
	bitLowDeadline Microseconds = 100
	// Bit high pulse: 26-28us for a zero, ~70us for a one.
	bitHighDeadline Microseconds = 120

	// Classification threshold between the zero and one pulse widths.
	bitThreshold Microseconds = 50
)

// A frame is 40 bits: humidity high/low, temperature high/low, checksum.
const (
	frameBits  = 40
	frameBytes = 5
)
