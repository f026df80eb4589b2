// Replay feeds scripted sensor traces through the driver on a host build,
// demonstrating decode, checksum rejection and timeout classification
// without any hardware attached.
package main

import (
	"fmt"

	dht22 "dht22-go"
	"dht22-go/sim"
)

func main() {
	run("warm and humid", sim.FrameSignal(dht22.Frame{0x02, 0x8C, 0x01, 0x01, 0x90}))
	run("below freezing", sim.FrameSignal(dht22.Frame{0x01, 0x90, 0x80, 0x65, 0x76}))
	run("corrupted transfer", sim.FrameSignal(dht22.Frame{0x02, 0x8C, 0x01, 0x01, 0x42}))
	run("silent sensor", nil)
	run("stuck line", sim.HoldLow(100000))
}

func run(name string, script []sim.Segment) {
	tl := sim.New()
	tl.Respond(script...)
	dev := dht22.New(tl.Pin(), tl.Clock())

	r, err := dev.Read()
	if err != nil {
		fmt.Printf("%-20s %v\n", name, err)
		return
	}
	fmt.Printf("%-20s %.1f %%RH  %.1f C\n", name, r.RelHumidity(), r.Celsius())
}
