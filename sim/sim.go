// Package sim simulates the sensor side of the single-wire exchange for
// host tests and demos. A Timeline couples a scripted data line with the
// virtual microsecond clock the driver measures it against: the clock
// advances a fixed step on every sample, so the driver's busy-poll loops
// see time pass without any real sleeping, and pulse widths come out
// deterministic.
package sim

import (
	dht22 "dht22-go"
)

// Segment is one stretch of the sensor's scripted response.
type Segment struct {
	High  bool
	Width uint32 // microseconds
}

// Timeline is the shared state behind one simulated pin/clock pair. Zero
// value is not usable; call New.
type Timeline struct {
	now  uint32 // virtual time in us
	step uint32 // advance per clock sample

	script  []Segment
	playing bool
	origin  uint32 // virtual time of the bus release that started playback

	driven bool // host is holding the line low
	reads  int  // completed start signals (SetLow calls)

	setLowErr  error
	setHighErr error
}

// New returns a Timeline whose clock advances 1us per sample.
func New() *Timeline {
	return &Timeline{step: 1}
}

// Respond arms the sensor script. Playback starts at the next bus release
// (the SetHigh ending a start signal); an empty script leaves the line
// idling high, which the driver sees as a silent sensor.
func (t *Timeline) Respond(segs ...Segment) {
	t.script = segs
	t.playing = false
}

// FailSetLow makes every subsequent Pin.SetLow return err.
func (t *Timeline) FailSetLow(err error) { t.setLowErr = err }

// FailSetHigh makes every subsequent Pin.SetHigh return err.
func (t *Timeline) FailSetHigh(err error) { t.setHighErr = err }

// Reads returns how many start signals the driver has issued.
func (t *Timeline) Reads() int { return t.reads }

// Released reports that the host is not holding the line low.
func (t *Timeline) Released() bool { return !t.driven }

// Pin returns the driver-facing pin capability.
func (t *Timeline) Pin() dht22.Pin { return (*simPin)(t) }

// Clock returns the driver-facing clock capability.
func (t *Timeline) Clock() dht22.Clock { return (*simClock)(t) }

// level evaluates the line at the current virtual time.
func (t *Timeline) level() bool {
	if t.driven {
		return false
	}
	if !t.playing {
		return true // idle, pull-up
	}
	dt := t.now - t.origin
	for _, s := range t.script {
		if dt < s.Width {
			return s.High
		}
		dt -= s.Width
	}
	return true // script exhausted, sensor released the line
}

type simPin Timeline

func (p *simPin) SetLow() error {
	if p.setLowErr != nil {
		return p.setLowErr
	}
	p.driven = true
	p.playing = false
	p.reads++
	return nil
}

func (p *simPin) SetHigh() error {
	if p.setHighErr != nil {
		return p.setHighErr
	}
	if p.driven {
		// A release ending a start signal triggers the scripted response.
		p.driven = false
		p.origin = p.now
		p.playing = len(p.script) > 0
	}
	return nil
}

func (p *simPin) IsLow() bool  { return !(*Timeline)(p).level() }
func (p *simPin) IsHigh() bool { return (*Timeline)(p).level() }

type simClock Timeline

func (c *simClock) Now() dht22.Microseconds {
	t := c.now
	c.now += c.step
	return dht22.Microseconds(t)
}

// Nominal response timing used by the script builders.
const (
	ackDelay = 30 // sensor answers 20-40us after release
	ackPulse = 80 // handshake low and high phases
	bitLow   = 50 // per-bit low preamble
	zeroHigh = 26 // high pulse carrying a 0
	oneHigh  = 70 // high pulse carrying a 1
)

// FrameSignal renders the full scripted response for a 5-byte frame:
// handshake followed by 40 pulse-width-coded bits, nominal datasheet widths.
func FrameSignal(f dht22.Frame) []Segment {
	segs := make([]Segment, 0, 4+2*len(f)*8)
	segs = append(segs,
		Segment{High: true, Width: ackDelay},
		Segment{High: false, Width: ackPulse},
		Segment{High: true, Width: ackPulse},
	)
	for _, b := range f {
		for bit := 7; bit >= 0; bit-- {
			w := uint32(zeroHigh)
			if b&(1<<bit) != 0 {
				w = oneHigh
			}
			segs = append(segs,
				Segment{High: false, Width: bitLow},
				Segment{High: true, Width: w},
			)
		}
	}
	// End-of-frame: the sensor pulls low once more before releasing the bus,
	// which is the edge that terminates the final bit's high pulse.
	segs = append(segs, Segment{High: false, Width: bitLow})
	return segs
}

// HoldLow returns a script that pins the line low for the given width, then
// releases it. Useful for forcing phase timeouts.
func HoldLow(width uint32) []Segment {
	return []Segment{{High: true, Width: ackDelay}, {High: false, Width: width}}
}
