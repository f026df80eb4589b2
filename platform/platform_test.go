package platform_test

import (
	"errors"
	"testing"
	"time"

	dht22 "dht22-go"
	"dht22-go/platform"
)

func TestHostPinFailsCleanly(t *testing.T) {
	dev := dht22.New(platform.DataPin(2), platform.DefaultClock())
	_, err := dev.Read()
	var pe *dht22.PinError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want PinError: host builds have no GPIO", err)
	}
}

func TestDefaultClockAdvances(t *testing.T) {
	clk := platform.DefaultClock()
	a := clk.Now()
	time.Sleep(2 * time.Millisecond)
	b := clk.Now()
	if b-a < 1000 {
		t.Fatalf("clock advanced %dus over 2ms, want >= 1000us", b-a)
	}
}
