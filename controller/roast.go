package controller

import (
	"github.com/toddjobe/roastomatic"
)

// RoastConfig holds the thresholds that drive phase progression.
type RoastConfig struct {
	// PreheatThresholdF is the intake temperature that ends PREHEAT.
	PreheatThresholdF float32
	// DoneThresholdF is the bean temperature below which DROP becomes DONE.
	DoneThresholdF float32
	// HeatCutoffPercent is the heater duty at or below which ROAST becomes
	// DROP, signaling the operator has cut heat.
	HeatCutoffPercent int
	// ChargeWeightGrams is the target mass of raw beans for a batch.
	ChargeWeightGrams float32
	// CalibrationWeightGrams is the known reference mass used by CALIBRATE.
	CalibrationWeightGrams float32
	// DisableChargeCheck skips the LOAD guard that waits for at least half the
	// charge weight on the scale before calibrating.
	DisableChargeCheck bool
}

// DefaultRoastConfig returns the thresholds for the stock roaster build.
func DefaultRoastConfig() RoastConfig {
	return RoastConfig{
		PreheatThresholdF:      325,
		DoneThresholdF:         80,
		HeatCutoffPercent:      10,
		ChargeWeightGrams:      90.1,
		CalibrationWeightGrams: 100,
	}
}

// RoastSession tracks one batch through the roast phases. It is reset whenever
// the roast program is (re)selected and mutated only by Evaluate and
// ManualAdvance.
type RoastSession struct {
	Phase roastomatic.Phase

	// DropPercent is defined from ROAST onward and clamped to >= 0.
	DropPercent float32

	ElapsedTotalMs uint32
	ElapsedRoastMs uint32

	totalStarted bool
	roastStarted bool
	startTotalMs uint32
	startRoastMs uint32
}

// Reset returns the session to READY with cleared timers.
func (s *RoastSession) Reset() {
	*s = RoastSession{}
}

// Evaluate runs one pass of the phase transition function against the current
// sensor snapshot. At most one transition happens per pass. The TARE and
// CALIBRATE passes issue blocking scale commands on the board; the whole loop
// intentionally stalls until they return.
func (s *RoastSession) Evaluate(now uint32, snap *SensorSnapshot, board Board, cfg RoastConfig) {
	switch s.Phase {
	case roastomatic.PhaseReady:
		s.startTotalMs = now
		s.totalStarted = true
		s.Phase = roastomatic.PhasePreheat

	case roastomatic.PhasePreheat:
		if snap.IntakeTempF >= cfg.PreheatThresholdF {
			s.Phase = roastomatic.PhaseTare
		}

	case roastomatic.PhaseTare:
		board.Tare()
		s.Phase = roastomatic.PhaseLoad

	case roastomatic.PhaseLoad:
		if cfg.DisableChargeCheck || snap.WeightGrams > cfg.ChargeWeightGrams/2 {
			s.Phase = roastomatic.PhaseCalibrate
		}

	case roastomatic.PhaseCalibrate:
		board.CalibrateScale(cfg.CalibrationWeightGrams)
		s.startRoastMs = now
		s.roastStarted = true
		s.Phase = roastomatic.PhaseRoast

	case roastomatic.PhaseRoast:
		s.DropPercent = dropPercent(cfg.ChargeWeightGrams, snap.WeightGrams)
		if snap.HeatDutyPercent <= cfg.HeatCutoffPercent {
			s.Phase = roastomatic.PhaseDrop
		}

	case roastomatic.PhaseDrop:
		s.DropPercent = dropPercent(cfg.ChargeWeightGrams, snap.WeightGrams)
		if snap.BeanTempF < cfg.DoneThresholdF {
			s.Phase = roastomatic.PhaseDone
		}
	}

	s.updateTimers(now)
}

// ManualAdvance moves to the next phase on a button press, wrapping from DONE
// back to a fresh READY session. This is the testing path; it does not issue
// scale commands.
func (s *RoastSession) ManualAdvance(now uint32) {
	next := s.Phase.Next()
	if next == roastomatic.PhaseReady {
		s.Reset()
		return
	}

	switch next {
	case roastomatic.PhasePreheat:
		s.startTotalMs = now
		s.totalStarted = true
	case roastomatic.PhaseRoast:
		s.startRoastMs = now
		s.roastStarted = true
	}
	s.Phase = next
	s.updateTimers(now)
}

// updateTimers keeps the displayed timers current on every pass, independent
// of phase.
func (s *RoastSession) updateTimers(now uint32) {
	if s.totalStarted {
		s.ElapsedTotalMs = now - s.startTotalMs
	}
	if s.roastStarted {
		s.ElapsedRoastMs = now - s.startRoastMs
	}
}

func dropPercent(charge, current float32) float32 {
	if charge <= 0 {
		return 0
	}
	d := 100 * (charge - current) / charge
	if d < 0 {
		return 0
	}
	return d
}
