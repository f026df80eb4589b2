package dht22

import (
	"errors"

	"dht22-go/x/conv"
)

// ErrChecksum reports a frame whose checksum byte did not match the computed
// sum: all 40 bits arrived but the transfer was corrupted. Not a hardware
// fault; re-read.
var ErrChecksum = errors.New("dht22: checksum mismatch")

// Phase identifies where in the exchange a transition was missed.
type Phase uint8

const (
	// PhaseAckBegin: waiting for the sensor to answer the start signal.
	PhaseAckBegin Phase = iota
	// PhaseAckLow: waiting for the handshake low phase to end.
	PhaseAckLow
	// PhaseAckHigh: waiting for the handshake high phase to end.
	PhaseAckHigh
	// PhaseBitLow: waiting for a bit's low preamble to end.
	PhaseBitLow
	// PhaseBitHigh: waiting for a bit's high pulse to end.
	PhaseBitHigh
)

func (p Phase) String() string {
	switch p {
	case PhaseAckBegin:
		return "handshake_start"
	case PhaseAckLow:
		return "handshake_low"
	case PhaseAckHigh:
		return "handshake_high"
	case PhaseBitLow:
		return "bit_low"
	case PhaseBitHigh:
		return "bit_high"
	}
	return "unknown"
}

// TimeoutError reports a missed transition. Spurious timeouts are expected
// under preemption or marginal wiring; the next read usually succeeds.
type TimeoutError struct {
	Phase   Phase
	Bit     int // bit index for the data phases, -1 otherwise
	Elapsed Microseconds
}

func (e *TimeoutError) Error() string {
	var num [20]byte
	s := "dht22: timeout in " + e.Phase.String()
	if e.Bit >= 0 {
		s += " (bit " + string(conv.Itoa(num[:], int64(e.Bit))) + ")"
	}
	return s + " after " + string(conv.Utoa(num[:], uint64(e.Elapsed))) + "us"
}

// PinError wraps a device-level fault from the Pin capability. It is
// propagated verbatim and never retried internally.
type PinError struct {
	Op  string // "set_low" or "set_high"
	Err error
}

func (e *PinError) Error() string { return "dht22: pin " + e.Op + ": " + e.Err.Error() }
func (e *PinError) Unwrap() error { return e.Err }

// Retryable reports whether err is one of the transient failure kinds
// (timeout or checksum) that a fresh read can be expected to clear. Pin
// faults are not retryable here; they indicate a device problem.
func Retryable(err error) bool {
	var te *TimeoutError
	return errors.Is(err, ErrChecksum) || errors.As(err, &te)
}
