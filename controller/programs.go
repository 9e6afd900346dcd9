package controller

import (
	"fmt"

	"github.com/toddjobe/roastomatic"
)

// RoastProgram runs the roast process state machine. Selecting it resets the
// session to READY. The power button advances phases manually; the auto button
// toggles sensor-driven progression; zero and calibrate buttons issue the
// blocking scale commands directly.
type RoastProgram struct{}

func (p *RoastProgram) Name() string { return "Roast" }

func (p *RoastProgram) Setup(c *Controller) {
	c.session.Reset()
	c.buttons[BtnPower].SetNStates(8)
	c.buttons[BtnAuto].Reset()
}

func (p *RoastProgram) Loop(c *Controller, now uint32) {
	if c.buttons[BtnZero].Changed() {
		c.board.Tare()
	}
	if c.buttons[BtnCalibrate].Changed() {
		c.board.CalibrateScale(c.cfg.Roast.CalibrationWeightGrams)
	}

	switch {
	case c.buttons[BtnPower].Changed():
		c.session.ManualAdvance(now)
	case c.buttons[BtnAuto].Count() == 0:
		c.session.Evaluate(now, &c.snap, c.board, c.cfg.Roast)
	default:
		// manual hold: no transitions, but displayed timers stay current
		c.session.updateTimers(now)
	}

	c.StageTelemetry(roastomatic.Record{
		ElapsedRoastMs: c.session.ElapsedRoastMs,
		ElapsedTotalMs: c.session.ElapsedTotalMs,
		Phase:          c.session.Phase,
		FanRaw:         c.snap.FanPotRaw,
		HeatRaw:        c.snap.HeatPotRaw,
		BeanTempF:      c.snap.BeanTempF,
		IntakeTempF:    c.snap.IntakeTempF,
		WeightGrams:    c.snap.WeightGrams,
		DropPercent:    c.session.DropPercent,
	})

	c.StageDisplay([]string{
		"Roast  " + c.session.Phase.String(),
		fmt.Sprintf("R %s  T %s",
			FormatMillis(c.session.ElapsedRoastMs), FormatMillis(c.session.ElapsedTotalMs)),
		fmt.Sprintf("Bean %5.1fF In %5.1fF", c.snap.BeanTempF, c.snap.IntakeTempF),
		fmt.Sprintf("Wgt %6.1fg Drop %4.1f%%", c.snap.WeightGrams, c.session.DropPercent),
		fmt.Sprintf("Fan %3d%%  Heat %3d%%", c.snap.FanDutyPercent, c.snap.HeatDutyPercent),
	}, 1)
}

// ButtonTestProgram shows every button's cyclic count.
type ButtonTestProgram struct{}

func (p *ButtonTestProgram) Name() string { return "Test Buttons" }

func (p *ButtonTestProgram) Setup(c *Controller) {}

func (p *ButtonTestProgram) Loop(c *Controller, now uint32) {
	lines := []string{"Test Buttons"}
	for i, b := range c.buttons {
		lines = append(lines, fmt.Sprintf("Button %d: %d", i, b.Count()))
	}
	c.RenderNow(lines, 1)
}

// DisplayTestProgram cycles the display text size with the power button.
type DisplayTestProgram struct{}

func (p *DisplayTestProgram) Name() string { return "Test Display" }

func (p *DisplayTestProgram) Setup(c *Controller) {
	c.buttons[BtnPower].SetNStates(4)
}

func (p *DisplayTestProgram) Loop(c *Controller, now uint32) {
	c.RenderNow([]string{
		"Test Display",
		"012345678912345678921",
	}, c.buttons[BtnPower].Count()+1)
}

// PotTestProgram shows raw, duty, and dial values for both potentiometers.
type PotTestProgram struct{}

func (p *PotTestProgram) Name() string { return "Test Potentiometers" }

func (p *PotTestProgram) Setup(c *Controller) {}

func (p *PotTestProgram) Loop(c *Controller, now uint32) {
	c.RenderNow([]string{
		"Test Potentiometers",
		"",
		"Pot   Res Duty Dial",
		"-------------------",
		fmt.Sprintf("Fan  %4d %3d%% %s", c.snap.FanPotRaw, c.snap.FanDutyPercent, FormatDial(c.snap.FanDialUnits)),
		fmt.Sprintf("Heat %4d %3d%% %s", c.snap.HeatPotRaw, c.snap.HeatDutyPercent, FormatDial(c.snap.HeatDialUnits)),
	}, 1)
}

// ThermocoupleTestProgram shows both thermocouple readings.
type ThermocoupleTestProgram struct{}

func (p *ThermocoupleTestProgram) Name() string { return "Test Thermocouples" }

func (p *ThermocoupleTestProgram) Setup(c *Controller) {}

func (p *ThermocoupleTestProgram) Loop(c *Controller, now uint32) {
	c.RenderNow([]string{
		"Test Thermocouples",
		"Therm      degF",
		"---------------",
		fmt.Sprintf("Intake  %7.1f", c.snap.IntakeTempF),
		fmt.Sprintf("Bean    %7.1f", c.snap.BeanTempF),
	}, 1)
}

// ScaleTestProgram shows load cell readings; the power button cycles the
// amplifier configuration index and zero/calibrate work directly.
type ScaleTestProgram struct{}

func (p *ScaleTestProgram) Name() string { return "Test Scale" }

func (p *ScaleTestProgram) Setup(c *Controller) {
	c.buttons[BtnPower].SetNStates(8)
}

func (p *ScaleTestProgram) Loop(c *Controller, now uint32) {
	if c.buttons[BtnZero].Changed() {
		c.board.Tare()
	}
	if c.buttons[BtnCalibrate].Changed() {
		c.board.CalibrateScale(c.cfg.Roast.CalibrationWeightGrams)
	}

	c.RenderNow([]string{
		"Test Scale",
		fmt.Sprintf("Config %d", c.buttons[BtnPower].Count()),
		fmt.Sprintf("Raw   %8d", c.snap.RawWeight),
		fmt.Sprintf("Grams %8.1f", c.snap.WeightGrams),
	}, 1)
}
