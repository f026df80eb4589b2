//go:build !tinygo

// Package critical provides a scoped window during which the running code is
// not preempted, protecting microsecond-scale timing measurements. On TinyGo
// targets it masks interrupts; on standard Go builds it is a no-op and
// occasional spurious timeouts are accepted instead.
package critical

// State is the opaque pre-entry interrupt state.
type State uintptr

// Enter is a no-op on standard Go builds.
func Enter() State { return 0 }

// Exit is a no-op on standard Go builds.
func Exit(State) {}
