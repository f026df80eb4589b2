package dht22

// waiter measures how long the line stays in a state, bounded by a deadline.
// It only busy-polls: the pulses involved are far below the resolution of
// any scheduler sleep.
type waiter struct {
	clock Clock
}

// waitFor polls cond until it holds, returning the elapsed time since entry.
// ok is false once the deadline passes first; elapsed is still returned for
// error context. Elapsed time uses wrapping subtraction on the raw counter,
// so a clock wrap mid-wait measures correctly regardless of the start value
// (e.g. for a u8 counter, 10-230 = 36).
func (w waiter) waitFor(cond func() bool, deadline Microseconds) (elapsed Microseconds, ok bool) {
	start := w.clock.Now()
	for {
		elapsed = w.clock.Now() - start
		if cond() {
			return elapsed, true
		}
		if elapsed >= deadline {
			return elapsed, false
		}
	}
}

// hold busy-waits for the given duration.
func (w waiter) hold(d Microseconds) {
	w.waitFor(never, d)
}

func never() bool { return false }
