//go:build tinygo

// Package critical provides a scoped window during which the running code is
// not preempted, protecting microsecond-scale timing measurements. On TinyGo
// targets it masks interrupts; on standard Go builds it is a no-op and
// occasional spurious timeouts are accepted instead.
package critical

import "runtime/interrupt"

// State is the opaque pre-entry interrupt state.
type State = interrupt.State

// Enter masks interrupts and returns the previous state.
func Enter() State {
	return interrupt.Disable()
}

// Exit restores the interrupt state captured by Enter. It must run on every
// exit path of the protected section.
func Exit(s State) {
	interrupt.Restore(s)
}
