// Package dht22 provides a driver for the DHT22/AM2302 temperature and
// humidity sensor, which speaks a timed single-wire protocol over one
// open-drain GPIO. The driver is written against two small capabilities:
//
//	type myPin struct{ ... }   // implements dht22.Pin
//	type myClock struct{ ... } // implements dht22.Clock
//
//	dev := dht22.New(pin, clock)
//	for {
//		time.Sleep(2 * time.Second) // sensor conversion interval
//		r, err := dev.Read()
//		if err != nil {
//			continue // Timeout/Checksum are transient; just re-read
//		}
//		println(r.DeciRelHumidity(), r.DeciCelsius())
//	}
//
// Read busy-polls the pin against the clock because the pulses carrying the
// data are 26-70us wide, below the resolution of any sleeping primitive. On
// TinyGo builds interrupts are masked for the duration of the exchange (see
// x/critical); elsewhere occasional spurious timeouts from preemption are
// expected and clear on the next read.
//
// The decode path is fixed-point only; floats appear solely in the optional
// Reading accessors.
package dht22

import (
	"dht22-go/x/critical"
)

// Pin is the data-line capability: an open-drain GPIO shared with the sensor.
// SetLow drives the line low; SetHigh releases it to the pull-up. The level
// queries must be cheap, they are called in a tight loop.
type Pin interface {
	SetLow() error
	SetHigh() error
	IsLow() bool
	IsHigh() bool
}

// Clock is a monotonic microsecond counter. It never fails and is allowed to
// wrap during a read; elapsed times are computed with wrapping subtraction.
type Clock interface {
	Now() Microseconds
}

// Microseconds is the clock's native unit.
type Microseconds uint32

// Device represents one DHT22 wired to one data pin. It owns the pin and
// clock for its lifetime; no other code may touch the pin while a read is
// in flight. The device keeps no state between reads.
type Device struct {
	pin   Pin
	clock Clock
}

// New creates a Device from a pin and clock. Construction does not touch the
// hardware; the line should idle high (released) before the first Read.
func New(pin Pin, clock Clock) Device {
	return Device{pin: pin, clock: clock}
}

// Read performs one full exchange with the sensor and blocks for its
// duration, typically 4-6ms. The sensor needs at least 2 seconds between
// reads to produce fresh data; pacing is the caller's job (hal.Poller does
// it for you). On failure the partial frame is discarded and the line is
// released; a fresh Read restarts the protocol from scratch. Timeout and
// checksum failures are transient, see Retryable.
func (d *Device) Read() (Reading, error) {
	var widths [frameBits]Microseconds
	if err := d.acquire(&widths); err != nil {
		return Reading{}, err
	}

	var f Frame
	for i, w := range widths {
		if decodeBit(w) {
			f[i/8] |= 1 << (7 - i%8)
		}
	}
	return f.Reading()
}

// acquire runs the timing-critical half of Read: start signal, handshake and
// the capture of all 40 high-phase pulse widths.
func (d *Device) acquire(widths *[frameBits]Microseconds) error {
	// Leave the line released no matter how the exchange ends, so the bus
	// idles high and the next read starts from a known state.
	defer func() { _ = d.pin.SetHigh() }()

	// Mask interrupts across the whole exchange; a single missed edge ruins
	// the measurement. Restored on every exit path.
	restore := critical.Enter()
	defer critical.Exit(restore)

	w := waiter{clock: d.clock}

	// Start signal: hold the line low long enough for the sensor to notice,
	// then release it to the pull-up.
	if err := d.pin.SetLow(); err != nil {
		return &PinError{Op: "set_low", Err: err}
	}
	w.hold(startHoldLow)
	if err := d.pin.SetHigh(); err != nil {
		return &PinError{Op: "set_high", Err: err}
	}

	// Handshake: the sensor answers within 20-40us by pulling the line low
	// for ~80us, then driving it high for ~80us.
	if el, ok := w.waitFor(d.pin.IsLow, ackBeginDeadline); !ok {
		return &TimeoutError{Phase: PhaseAckBegin, Bit: -1, Elapsed: el}
	}
	if el, ok := w.waitFor(d.pin.IsHigh, ackLowDeadline); !ok {
		return &TimeoutError{Phase: PhaseAckLow, Bit: -1, Elapsed: el}
	}
	if el, ok := w.waitFor(d.pin.IsLow, ackHighDeadline); !ok {
		return &TimeoutError{Phase: PhaseAckHigh, Bit: -1, Elapsed: el}
	}

	// Data: each bit is a ~50us low preamble followed by a high pulse whose
	// width carries the value. Only the high width is informative.
	for i := 0; i < frameBits; i++ {
		if el, ok := w.waitFor(d.pin.IsHigh, bitLowDeadline); !ok {
			return &TimeoutError{Phase: PhaseBitLow, Bit: i, Elapsed: el}
		}
		el, ok := w.waitFor(d.pin.IsLow, bitHighDeadline)
		if !ok {
			return &TimeoutError{Phase: PhaseBitHigh, Bit: i, Elapsed: el}
		}
		widths[i] = el
	}
	return nil
}

// decodeBit classifies one high-phase pulse width. The function is total:
// widths at or above the 50us threshold decode to 1, everything below to 0.
// Nominal pulses are 26-28us (zero) and ~70us (one); out-of-range widths
// never reach here because the pulse deadlines catch them first.
func decodeBit(width Microseconds) bool {
	return width >= bitThreshold
}
