//go:build tinygo

package main

import "machine"

// Panel wiring for the Raspberry Pi Pico build.
const (
	pinHeater = machine.GP2 // PWM1 channel A
	pinFan    = machine.GP4 // PWM2 channel A

	pinFanPot  = machine.ADC0
	pinHeatPot = machine.ADC1

	pinBtnProgram   = machine.GP10
	pinBtnPower     = machine.GP11
	pinBtnAuto      = machine.GP12
	pinBtnZero      = machine.GP13
	pinBtnCalibrate = machine.GP14

	// Thermocouples share SPI0 (SCK GP18, SDI GP16) with separate chip selects.
	pinIntakeCS = machine.GP17
	pinBeanCS   = machine.GP20

	pinScaleClock = machine.GP6
	pinScaleData  = machine.GP7

	pinOLEDSDA = machine.GP0
	pinOLEDSCL = machine.GP1
)
