// Package conv holds allocation-free number formatting for MCU code paths
// where fmt is too heavy. Functions write into a caller buffer and return
// the used slice.
package conv

// Utoa writes the base-10 representation of n into buf and returns the used
// slice. buf should be at least 20 bytes for uint64.
func Utoa(buf []byte, n uint64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
	} else {
		for n > 0 && i > 0 {
			i--
			buf[i] = byte('0' + (n % 10))
			n /= 10
		}
	}
	return buf[i:]
}

// Itoa writes the base-10 representation of n into buf and returns the used
// slice. buf should be at least 20 bytes for int64.
func Itoa(buf []byte, n int64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	neg := n < 0
	var u uint64
	if neg {
		u = uint64(-n)
	} else {
		u = uint64(n)
	}
	s := Utoa(buf[1:], u)
	if !neg {
		return s
	}
	// Utoa wrote into buf[1:], so there is always room for the sign.
	i := len(buf) - len(s) - 1
	buf[i] = '-'
	return buf[i:]
}

// Deci writes a fixed-point value held in tenths as "whole.frac", e.g.
// 652 -> "65.2", -1 -> "-0.1". buf should be at least 22 bytes.
func Deci(buf []byte, v int32) []byte {
	if len(buf) < 4 {
		return buf[:0]
	}
	neg := v < 0
	if neg {
		v = -v
	}
	frac := byte('0' + v%10)
	s := Itoa(buf[:len(buf)-2], int64(v/10))
	i := len(buf) - len(s) - 2
	buf[len(buf)-2] = '.'
	buf[len(buf)-1] = frac
	if neg && i > 0 {
		i--
		buf[i] = '-'
	}
	return buf[i:]
}
