package main

import (
	"context"
	"io"
	"time"

	"github.com/toddjobe/roastomatic"
	"github.com/toddjobe/roastomatic/config"
	"github.com/toddjobe/roastomatic/controller"
)

// startSim runs a full controller against the thermal model in-process. It
// returns the telemetry stream and a writer accepting the same single-byte
// commands the firmware takes.
func startSim(ctx context.Context, cfg *config.Config) (io.Reader, io.Writer) {
	telemetryR, telemetryW := io.Pipe()
	commandR, commandW := io.Pipe()

	go runSim(ctx, cfg, telemetryW, commandR)

	return telemetryR, commandW
}

func runSim(ctx context.Context, cfg *config.Config, telemetry *io.PipeWriter, commands *io.PipeReader) {
	defer telemetry.Close()

	board := controller.NewSimBoard(0)
	fanPot := &controller.SimPot{Value: 2000}
	heatPot := &controller.SimPot{Value: 3700}

	var inputs [controller.NumButtons]controller.DigitalReader
	for i := range inputs {
		inputs[i] = &controller.SimSwitch{}
	}

	ctrl := controller.New(cfg.Controller(), controller.Hardware{
		Board:     board,
		Display:   &controller.SimDisplay{},
		Telemetry: telemetry,
		FanPot:    fanPot,
		HeatPot:   heatPot,
		Buttons:   inputs,
	}, controller.NewSystemClock())

	// Remote command bytes land in a channel so the loop below stays
	// single-threaded, like the firmware loop.
	bytes := make(chan byte, 16)
	go func() {
		buf := make([]byte, 1)
		for {
			if _, err := commands.Read(buf); err != nil {
				return
			}
			select {
			case bytes <- buf[0]:
			default:
			}
		}
	}()

	const tickMs = 10
	ticker := time.NewTicker(tickMs * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			board.Advance(tickMs)
			drainCommands(ctrl, bytes)
			operate(ctrl, board, heatPot, cfg)
			ctrl.Step()
		}
	}
}

func drainCommands(ctrl *controller.Controller, bytes chan byte) {
	for {
		select {
		case b := <-bytes:
			switch b {
			case 'p':
				ctrl.PressButton(controller.BtnProgram)
			case '+':
				ctrl.PressButton(controller.BtnPower)
			case 'a':
				ctrl.PressButton(controller.BtnAuto)
			case 'z':
				ctrl.PressButton(controller.BtnZero)
			case 'c':
				ctrl.PressButton(controller.BtnCalibrate)
			}
		default:
			return
		}
	}
}

// operate scripts a hands-off demo batch: the beans get loaded once the scale
// is tared, and the heat gets cut two minutes into the roast.
func operate(ctrl *controller.Controller, board *controller.SimBoard, heatPot *controller.SimPot, cfg *config.Config) {
	s := ctrl.Session()
	switch s.Phase {
	case roastomatic.PhaseLoad:
		if board.WeightGrams == 0 {
			board.WeightGrams = cfg.Roast.ChargeWeightGrams
		}
	case roastomatic.PhaseRoast:
		if s.ElapsedRoastMs > 2*60*1000 {
			heatPot.Value = 0
		}
	}
}
