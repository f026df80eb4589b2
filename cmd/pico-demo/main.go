//go:build rp2040 || rp2350

// Demo firmware for the Pico family: polls a DHT22 on GP15 and mirrors each
// reading to the serial console, UART0 and an SSD1306 OLED on i2c0.
package main

import (
	"context"
	"image/color"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	dht22 "dht22-go"
	"dht22-go/hal"
	"dht22-go/platform"
	"dht22-go/x/conv"
)

const sensorPin = 15 // GP15, with a 4.7k-10k pull-up to 3V3

func main() {
	// Give USB serial a moment to enumerate.
	time.Sleep(3 * time.Second)

	// OLED on i2c0 default pins.
	i2c := machine.I2C0
	_ = i2c.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	})
	display := ssd1306.NewI2C(i2c)
	display.Configure(ssd1306.Config{Width: 128, Height: 64, Address: 0x3C})
	display.ClearDisplay()

	// Telemetry lines on uart0, default pins.
	_ = uartx.UART0.Configure(uartx.UARTConfig{BaudRate: 115200})

	dev := dht22.New(platform.DataPin(sensorPin), platform.DefaultClock())
	poller := hal.New(&dev, hal.Config{Interval: 2 * time.Second})
	poller.Start(context.Background())

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	var buf [22]byte
	for {
		select {
		case s := <-poller.Samples():
			line := "RH " + string(conv.Deci(buf[:], int32(s.Reading.DeciRelHumidity()))) +
				"%  T " + string(conv.Deci(buf[:], int32(s.Reading.DeciCelsius()))) + "C"
			println(line)
			_, _ = uartx.UART0.Write([]byte(line + "\r\n"))
			display.ClearBuffer()
			tinyfont.WriteLine(&display, &proggy.TinySZ8pt7b, 4, 16, line, white)
			_ = display.Display()
		case err := <-poller.Errors():
			println("read error:", err.Error())
		}
	}
}
