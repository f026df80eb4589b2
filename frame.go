package dht22

// Frame is one raw 40-bit transfer in wire order: humidity high, humidity
// low, temperature high, temperature low, checksum.
type Frame [frameBytes]byte

// checksum is the wrapping byte sum of the four data bytes.
func (f Frame) checksum() byte {
	return f[0] + f[1] + f[2] + f[3]
}

// Reading validates the frame and extracts the measurements. A frame whose
// checksum byte does not match the computed sum yields ErrChecksum. There is
// no other structural validation; the sensor's framing has no reserved
// fields beyond the temperature sign bit.
func (f Frame) Reading() (Reading, error) {
	if f.checksum() != f[4] {
		return Reading{}, ErrChecksum
	}
	h := uint16(f[0])<<8 | uint16(f[1])
	// Bit 15 of the temperature field flags a negative value; the remaining
	// 15 bits are the magnitude in tenths.
	t := int16(uint16(f[2]&0x7F)<<8 | uint16(f[3]))
	if f[2]&0x80 != 0 {
		t = -t
	}
	return Reading{deciHumidity: h, deciCelsius: t}, nil
}

// Reading is one validated measurement. Values are stored in tenths of a
// unit so the decode path stays free of floating point; float accessors are
// provided for convenience.
type Reading struct {
	deciHumidity uint16
	deciCelsius  int16
}

// DeciRelHumidity returns relative humidity in tenths of %RH (652 = 65.2%).
func (r Reading) DeciRelHumidity() uint16 { return r.deciHumidity }

// DeciCelsius returns temperature in tenths of a degree C, negative below
// freezing (-1 = -0.1C).
func (r Reading) DeciCelsius() int16 { return r.deciCelsius }

// RelHumidity returns relative humidity in percent.
func (r Reading) RelHumidity() float32 { return float32(r.deciHumidity) / 10 }

// Celsius returns the temperature in degrees C.
func (r Reading) Celsius() float32 { return float32(r.deciCelsius) / 10 }
