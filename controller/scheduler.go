package controller

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/toddjobe/roastomatic"
)

// Button roles, in wiring order.
const (
	BtnProgram = iota // cycles the active program
	BtnPower          // phase advance in the roast program
	BtnAuto           // toggles sensor-driven phase progression
	BtnZero           // manual tare
	BtnCalibrate      // manual calibrate at the reference weight
	NumButtons
)

// Config holds the scheduler cadences and the roast thresholds.
type Config struct {
	Roast RoastConfig

	TemperaturePeriodMs uint32
	WeightPeriodMs      uint32
	DisplayPeriodMs     uint32
	TelemetryPeriodMs   uint32
}

// DefaultConfig returns the stock cadences: temperature 250 ms, weight 100 ms,
// display 16 ms (~60 Hz), telemetry 250 ms.
func DefaultConfig() Config {
	return Config{
		Roast:               DefaultRoastConfig(),
		TemperaturePeriodMs: 250,
		WeightPeriodMs:      100,
		DisplayPeriodMs:     16,
		TelemetryPeriodMs:   250,
	}
}

// Hardware bundles the adapters the control loop drives. Everything behind
// these interfaces is a thin I/O wrapper; the loop owns all the logic.
type Hardware struct {
	Board     Board
	Display   Display
	Telemetry io.Writer
	FanPot    AnalogReader
	HeatPot   AnalogReader
	Buttons   [NumButtons]DigitalReader
}

// Program is one top-level mode selected by the program button. Setup runs
// once when the program is selected; Loop runs every iteration while it owns
// the loop.
type Program interface {
	Name() string
	Setup(c *Controller)
	Loop(c *Controller, now uint32)
}

// Controller is the cooperative polling scheduler. One Step is one loop
// iteration: buttons and pots are read unconditionally, rate gates decide
// which sampling/output subsystems run, the active program consumes the
// snapshot, and duty writes happen last so displayed values are never newer
// than the values behind the current actuator output.
//
// Single-threaded by design: all shared state is owned here and accessed from
// one task only.
type Controller struct {
	cfg   Config
	clock Clock

	board     Board
	display   Display
	telemetry io.Writer
	fanPot    AnalogReader
	heatPot   AnalogReader
	buttons   [NumButtons]*Button

	tempGate      *RateGate
	weightGate    *RateGate
	displayGate   *RateGate
	telemetryGate *RateGate

	programs []Program
	current  int

	snap    SensorSnapshot
	session RoastSession

	stagedLines []string
	textSize    int
	renderNow   bool
	record      roastomatic.Record
	hasRecord   bool
}

// New wires a controller. The program button cycles through the roast program
// followed by the diagnostic programs.
func New(cfg Config, hw Hardware, clock Clock) *Controller {
	c := &Controller{
		cfg:           cfg,
		clock:         clock,
		board:         hw.Board,
		display:       hw.Display,
		telemetry:     hw.Telemetry,
		fanPot:        hw.FanPot,
		heatPot:       hw.HeatPot,
		tempGate:      NewRateGate(cfg.TemperaturePeriodMs),
		weightGate:    NewRateGate(cfg.WeightPeriodMs),
		displayGate:   NewRateGate(cfg.DisplayPeriodMs),
		telemetryGate: NewRateGate(cfg.TelemetryPeriodMs),
		programs: []Program{
			&RoastProgram{},
			&ButtonTestProgram{},
			&DisplayTestProgram{},
			&PotTestProgram{},
			&ThermocoupleTestProgram{},
			&ScaleTestProgram{},
		},
	}

	c.buttons[BtnProgram] = NewButton(hw.Buttons[BtnProgram], len(c.programs), clock)
	c.buttons[BtnPower] = NewButton(hw.Buttons[BtnPower], 4, clock)
	c.buttons[BtnAuto] = NewButton(hw.Buttons[BtnAuto], 2, clock)
	c.buttons[BtnZero] = NewButton(hw.Buttons[BtnZero], 2, clock)
	c.buttons[BtnCalibrate] = NewButton(hw.Buttons[BtnCalibrate], 2, clock)

	c.programs[0].Setup(c)

	return c
}

// Run steps the loop until ctx is cancelled. Callers that interleave other
// work per iteration, like the firmware's serial command polling, call Step
// directly instead.
func (c *Controller) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		c.Step()
		time.Sleep(100 * time.Microsecond)
	}
}

// Step executes one loop iteration.
func (c *Controller) Step() {
	now := c.clock.Millis()

	c.stagedLines = nil
	c.renderNow = false
	c.hasRecord = false

	for _, b := range c.buttons {
		b.Sample()
	}

	c.snap.FanPotRaw = c.fanPot.Get()
	c.snap.HeatPotRaw = c.heatPot.Get()
	c.snap.FanDutyPercent = DutyPercent(c.snap.FanPotRaw)
	c.snap.HeatDutyPercent = DutyPercent(c.snap.HeatPotRaw)
	c.snap.FanDialUnits = DialHundredths(c.snap.FanPotRaw)
	c.snap.HeatDialUnits = DialHundredths(c.snap.HeatPotRaw)

	if c.tempGate.IsDue(now) {
		c.snap.IntakeTempF = c.board.ReadIntakeTempF()
		c.snap.BeanTempF = c.board.ReadBeanTempF()
		c.tempGate.Fire(now)
	}

	if c.weightGate.IsDue(now) {
		c.snap.RawWeight = c.board.ReadRawWeight()
		c.snap.WeightGrams = c.board.ReadWeightGrams()
		c.weightGate.Fire(now)
	}

	if idx := c.buttons[BtnProgram].Count(); idx != c.current {
		c.current = idx
		c.programs[idx].Setup(c)
	}
	c.programs[c.current].Loop(c, now)

	if c.stagedLines != nil && (c.renderNow || c.displayGate.IsDue(now)) {
		_ = c.display.Render(c.stagedLines, c.textSize)
		c.displayGate.Fire(now)
	}

	if c.hasRecord && c.telemetryGate.IsDue(now) {
		fmt.Fprintln(c.telemetry, c.record.String())
		c.telemetryGate.Fire(now)
	}

	c.board.SetFanDuty(c.snap.FanDutyPercent)
	c.board.SetHeaterDuty(c.snap.HeatDutyPercent)
}

// StageDisplay stages a display buffer to be flushed when the display gate
// fires.
func (c *Controller) StageDisplay(lines []string, textSize int) {
	c.stagedLines = lines
	c.textSize = textSize
}

// RenderNow stages a display buffer that flushes this iteration regardless of
// the display gate. The diagnostic programs refresh unconditionally.
func (c *Controller) RenderNow(lines []string, textSize int) {
	c.StageDisplay(lines, textSize)
	c.renderNow = true
}

// StageTelemetry stages one telemetry record; it is emitted only if the
// telemetry gate is due this iteration.
func (c *Controller) StageTelemetry(rec roastomatic.Record) {
	c.record = rec
	c.hasRecord = true
}

// PressButton registers one activation on the indexed button, as if it had
// been pressed and debounced. Serial remote commands land here.
func (c *Controller) PressButton(i int) {
	if i < 0 || i >= NumButtons {
		return
	}
	c.buttons[i].Press()
}

// Snapshot returns a copy of the current sensor snapshot.
func (c *Controller) Snapshot() SensorSnapshot {
	return c.snap
}

// Session returns a copy of the current roast session.
func (c *Controller) Session() RoastSession {
	return c.session
}

// ProgramName returns the name of the program owning the loop.
func (c *Controller) ProgramName() string {
	return c.programs[c.current].Name()
}
