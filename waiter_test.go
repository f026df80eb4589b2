package dht22

import "testing"

// stepClock advances one microsecond per sample.
type stepClock struct {
	t Microseconds
}

func (c *stepClock) Now() Microseconds {
	v := c.t
	c.t++
	return v
}

func TestDecodeBitThreshold(t *testing.T) {
	zeros := []Microseconds{0, 1, 26, 28, 49}
	for _, w := range zeros {
		if decodeBit(w) {
			t.Fatalf("width %dus decoded to 1, want 0", w)
		}
	}
	// The boundary value decodes to 1.
	ones := []Microseconds{50, 51, 70, 120, ^Microseconds(0)}
	for _, w := range ones {
		if !decodeBit(w) {
			t.Fatalf("width %dus decoded to 0, want 1", w)
		}
	}
}

func TestWaitForTransition(t *testing.T) {
	clk := &stepClock{}
	w := waiter{clock: clk}

	polls := 0
	elapsed, ok := w.waitFor(func() bool {
		polls++
		return polls > 40
	}, 100)
	if !ok {
		t.Fatalf("expected transition, got timeout after %dus", elapsed)
	}
	if elapsed < 39 || elapsed > 41 {
		t.Fatalf("elapsed = %dus, want ~40us", elapsed)
	}
}

func TestWaitForDeadline(t *testing.T) {
	w := waiter{clock: &stepClock{}}
	elapsed, ok := w.waitFor(never, 100)
	if ok {
		t.Fatal("condition can never hold, expected timeout")
	}
	if elapsed < 100 {
		t.Fatalf("elapsed = %dus, want >= deadline", elapsed)
	}
}

func TestWaitForClockWrap(t *testing.T) {
	// Start close enough to the counter limit that the wait spans the wrap.
	clk := &stepClock{t: ^Microseconds(0) - 10}
	w := waiter{clock: clk}

	polls := 0
	elapsed, ok := w.waitFor(func() bool {
		polls++
		return polls > 60
	}, 100)
	if !ok {
		t.Fatalf("wrap broke the wait: timeout after %dus", elapsed)
	}
	if elapsed < 59 || elapsed > 61 {
		t.Fatalf("elapsed = %dus across wrap, want ~60us", elapsed)
	}
}

func TestHoldConsumesDuration(t *testing.T) {
	clk := &stepClock{}
	w := waiter{clock: clk}
	w.hold(1100)
	if clk.t < 1100 {
		t.Fatalf("clock advanced %dus, want >= 1100us", clk.t)
	}
}
