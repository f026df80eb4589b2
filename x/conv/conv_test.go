package conv

import "testing"

func TestUtoa(t *testing.T) {
	var buf [20]byte
	for _, c := range []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{40, "40"},
		{18446744073709551615, "18446744073709551615"},
	} {
		if got := string(Utoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Utoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestItoa(t *testing.T) {
	var buf [21]byte
	for _, c := range []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-1, "-1"},
		{-99999, "-99999"},
	} {
		if got := string(Itoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Itoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestDeci(t *testing.T) {
	var buf [22]byte
	for _, c := range []struct {
		v    int32
		want string
	}{
		{0, "0.0"},
		{652, "65.2"},
		{261, "26.1"},
		{-1, "-0.1"},
		{-105, "-10.5"},
	} {
		if got := string(Deci(buf[:], c.v)); got != c.want {
			t.Fatalf("Deci(%d) = %q, want %q", c.v, got, c.want)
		}
	}
}
