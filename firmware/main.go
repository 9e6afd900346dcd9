//go:build tinygo

//go:generate tinygo flash -target=pico .

package main

import (
	"machine"

	"github.com/toddjobe/roastomatic/controller"
	"github.com/toddjobe/roastomatic/firmware/board"
	"github.com/toddjobe/roastomatic/firmware/commands"
)

func main() {
	machine.InitADC()

	b, err := board.New(board.Config{
		SPI:        machine.SPI0,
		IntakeCS:   pinIntakeCS,
		BeanCS:     pinBeanCS,
		ScaleClock: pinScaleClock,
		ScaleData:  pinScaleData,
		HeaterPWM:  machine.PWM1,
		HeaterPin:  pinHeater,
		FanPWM:     machine.PWM2,
		FanPin:     pinFan,
	})
	if err != nil {
		panic(err)
	}

	display, err := board.NewOLED(board.DisplayConfig{
		Bus: machine.I2C0,
		SDA: pinOLEDSDA,
		SCL: pinOLEDSCL,
	})
	if err != nil {
		panic(err)
	}

	ctrl := controller.New(controller.DefaultConfig(), controller.Hardware{
		Board:     b,
		Display:   display,
		Telemetry: machine.Serial,
		FanPot:    board.NewPot(pinFanPot),
		HeatPot:   board.NewPot(pinHeatPot),
		Buttons: [controller.NumButtons]controller.DigitalReader{
			controller.BtnProgram:   board.NewSwitch(pinBtnProgram),
			controller.BtnPower:     board.NewSwitch(pinBtnPower),
			controller.BtnAuto:      board.NewSwitch(pinBtnAuto),
			controller.BtnZero:      board.NewSwitch(pinBtnZero),
			controller.BtnCalibrate: board.NewSwitch(pinBtnCalibrate),
		},
	}, controller.NewSystemClock())

	for {
		commands.Poll(machine.Serial, ctrl)
		ctrl.Step()
	}
}
