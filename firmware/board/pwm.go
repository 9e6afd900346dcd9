//go:build tinygo

package board

import "machine"

// PWM matches the slice of the rp2040 PWM peripheral API used here, e.g.
// machine.PWM1.
type PWM interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Set(channel uint8, value uint32)
	Top() uint32
}

const pwmPeriodNs = 1e9 / 25000 // 25 kHz, above audible range

type pwmPin struct {
	pwm PWM
	ch  uint8
}

func newPWMPin(pwm PWM, pin machine.Pin) (pwmPin, error) {
	err := pwm.Configure(machine.PWMConfig{Period: pwmPeriodNs})
	if err != nil {
		return pwmPin{}, err
	}

	ch, err := pwm.Channel(pin)
	if err != nil {
		return pwmPin{}, err
	}

	return pwmPin{pwm: pwm, ch: ch}, nil
}

func (p pwmPin) SetPercent(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	p.pwm.Set(p.ch, uint32(uint64(p.pwm.Top())*uint64(percent)/100))
}
