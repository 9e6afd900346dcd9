//go:build tinygo

package board

import (
	"errors"
	"machine"
)

// ErrOpenThermocouple is returned when the thermocouple input is open.
var ErrOpenThermocouple = errors.New("board: thermocouple not connected")

// MAX6675 reads a K-type thermocouple. The chip has no registers: pulling
// chip select low clocks out a single 16-bit frame with the temperature in
// quarter degrees Celsius.
type MAX6675 struct {
	bus *machine.SPI
	cs  machine.Pin
}

func NewMAX6675(bus *machine.SPI, cs machine.Pin) *MAX6675 {
	cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	cs.High()
	return &MAX6675{bus: bus, cs: cs}
}

// ReadF returns the thermocouple temperature in Fahrenheit.
func (d *MAX6675) ReadF() (float32, error) {
	var buf [2]byte

	d.cs.Low()
	err := d.bus.Tx(nil, buf[:])
	d.cs.High()
	if err != nil {
		return 0, err
	}

	frame := uint16(buf[0])<<8 | uint16(buf[1])
	if frame&0x4 != 0 {
		return 0, ErrOpenThermocouple
	}

	celsius := float32(frame>>3) * 0.25
	return celsius*9/5 + 32, nil
}
