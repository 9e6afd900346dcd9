//go:build tinygo

package board

import (
	"machine"

	"github.com/toddjobe/roastomatic/controller"
)

// Pot reads a panel potentiometer, scaled down to the controller's 12-bit
// range.
type Pot struct {
	adc machine.ADC
}

var _ controller.AnalogReader = (*Pot)(nil)

func NewPot(pin machine.Pin) *Pot {
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})
	return &Pot{adc: adc}
}

func (p *Pot) Get() int {
	return int(p.adc.Get() >> 4)
}

// Switch reads a panel button wired to ground with a pull-up, so pressed
// reads low.
type Switch struct {
	pin machine.Pin
}

var _ controller.DigitalReader = (*Switch)(nil)

func NewSwitch(pin machine.Pin) *Switch {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &Switch{pin: pin}
}

func (s *Switch) Get() bool {
	return !s.pin.Get()
}
