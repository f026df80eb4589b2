//go:build tinygo

// Package platform supplies board-level pin and clock capabilities for the
// driver. On TinyGo targets (Pico, ESP32-C3, ...) these sit on the machine
// package; on standard Go builds there is no GPIO and tests inject the sim
// package instead.
package platform

import (
	"machine"
	"time"

	dht22 "dht22-go"
)

// DataPin adapts a GPIO to the open-drain discipline the sensor bus needs:
// driving low is an active output, driving high releases the line to the
// pull-up. n maps directly to machine.Pin, which matches GP numbering on the
// Pico family and GPIO numbering on the ESP32-C3.
func DataPin(n int) dht22.Pin {
	return &dataPin{pin: machine.Pin(n)}
}

type dataPin struct {
	pin machine.Pin
}

func (p *dataPin) SetLow() error {
	p.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.pin.Low()
	return nil
}

func (p *dataPin) SetHigh() error {
	// Release: input with pull-up rather than a driven high, so the sensor
	// can pull the shared line low.
	p.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return nil
}

func (p *dataPin) IsLow() bool  { return !p.pin.Get() }
func (p *dataPin) IsHigh() bool { return p.pin.Get() }

// DefaultClock returns a microsecond clock counting from its creation. On
// TinyGo the time package sits on the hardware microsecond timer, which is
// monotonic and cheap to sample.
func DefaultClock() dht22.Clock {
	return &bootClock{epoch: time.Now()}
}

type bootClock struct {
	epoch time.Time
}

func (c *bootClock) Now() dht22.Microseconds {
	return dht22.Microseconds(time.Since(c.epoch).Microseconds())
}
