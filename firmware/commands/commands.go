// Package commands maps single-byte serial input onto panel button presses so
// the host can drive the roaster remotely.
package commands

import (
	"github.com/toddjobe/roastomatic/controller"
)

type Command struct {
	Flag        byte
	Run         func(c Controller) error
	Description string
}

// Controller is the loop being remote-controlled.
type Controller interface {
	PressButton(i int)
	ProgramName() string
}

// Input is a non-blocking byte source, typically machine.Serial.
type Input interface {
	Buffered() int
	ReadByte() (byte, error)
}

var (
	ProgramCommand = &Command{
		Flag: 'p',
		Run: func(c Controller) error {
			c.PressButton(controller.BtnProgram)
			return nil
		},
		Description: "Cycle the active program.",
	}
	AdvanceCommand = &Command{
		Flag: '+',
		Run: func(c Controller) error {
			c.PressButton(controller.BtnPower)
			return nil
		},
		Description: "Advance the roast phase manually.",
	}
	AutoCommand = &Command{
		Flag: 'a',
		Run: func(c Controller) error {
			c.PressButton(controller.BtnAuto)
			return nil
		},
		Description: "Toggle automatic phase progression.",
	}
	ZeroCommand = &Command{
		Flag: 'z',
		Run: func(c Controller) error {
			c.PressButton(controller.BtnZero)
			return nil
		},
		Description: "Tare the scale.",
	}
	CalibrateCommand = &Command{
		Flag: 'c',
		Run: func(c Controller) error {
			c.PressButton(controller.BtnCalibrate)
			return nil
		},
		Description: "Calibrate the scale against the reference weight.",
	}
	HelpCommand = &Command{
		Flag: 'h',
		Run: func(c Controller) error {
			println("Active program:", c.ProgramName())
			println("Available Commands:")
			for _, cmd := range commands {
				println("  " + string(cmd.Flag) + ": " + cmd.Description)
			}
			return nil
		},
		Description: "Show all available commands and their descriptions.",
	}
)

var commands []*Command

func init() {
	commands = []*Command{
		ProgramCommand,
		AdvanceCommand,
		AutoCommand,
		ZeroCommand,
		CalibrateCommand,
		HelpCommand,
	}
}

// Poll drains pending input bytes and dispatches each recognized flag.
// Unrecognized bytes are ignored so stray line endings from the host are
// harmless.
func Poll(in Input, c Controller) {
	for in.Buffered() > 0 {
		b, err := in.ReadByte()
		if err != nil {
			return
		}
		for _, cmd := range commands {
			if cmd.Flag == b {
				if err := cmd.Run(c); err != nil {
					println("command error:", err.Error())
				}
				break
			}
		}
	}
}
