//go:build !tinygo

// Package platform supplies board-level pin and clock capabilities for the
// driver. On TinyGo targets (Pico, ESP32-C3, ...) these sit on the machine
// package; on standard Go builds there is no GPIO and tests inject the sim
// package instead.
package platform

import (
	"errors"
	"time"

	dht22 "dht22-go"
)

var errNoGPIO = errors.New("platform: no GPIO on this build")

// DataPin returns a pin whose set operations fail: standard Go builds have
// no GPIO. Host code wanting a working line should use the sim package.
func DataPin(int) dht22.Pin { return noPin{} }

type noPin struct{}

func (noPin) SetLow() error  { return errNoGPIO }
func (noPin) SetHigh() error { return errNoGPIO }
func (noPin) IsLow() bool    { return false }
func (noPin) IsHigh() bool   { return true }

// DefaultClock returns a microsecond clock counting from its creation.
func DefaultClock() dht22.Clock {
	return &bootClock{epoch: time.Now()}
}

type bootClock struct {
	epoch time.Time
}

func (c *bootClock) Now() dht22.Microseconds {
	return dht22.Microseconds(time.Since(c.epoch).Microseconds())
}
