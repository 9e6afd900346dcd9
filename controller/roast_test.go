package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toddjobe/roastomatic"
)

func TestRoastSessionFullSequence(t *testing.T) {
	board := NewSimBoard(0)
	cfg := DefaultRoastConfig()
	var s RoastSession
	var snap SensorSnapshot
	now := uint32(1000)

	require.Equal(t, roastomatic.PhaseReady, s.Phase)

	// READY arms the total timer and moves on unconditionally.
	s.Evaluate(now, &snap, board, cfg)
	require.Equal(t, roastomatic.PhasePreheat, s.Phase)
	assert.Equal(t, uint32(0), s.ElapsedTotalMs)

	// PREHEAT holds until the intake air is hot enough.
	for _, temp := range []float32{70, 300, 324.9} {
		snap.IntakeTempF = temp
		s.Evaluate(now, &snap, board, cfg)
		require.Equal(t, roastomatic.PhasePreheat, s.Phase, "intake %.1f", temp)
	}
	snap.IntakeTempF = 326
	s.Evaluate(now, &snap, board, cfg)
	require.Equal(t, roastomatic.PhaseTare, s.Phase)

	// TARE issues the blocking scale command exactly once.
	s.Evaluate(now, &snap, board, cfg)
	require.Equal(t, roastomatic.PhaseLoad, s.Phase)
	assert.Equal(t, 1, board.TareCalls)

	// LOAD waits for at least half the charge on the scale.
	snap.WeightGrams = 30
	s.Evaluate(now, &snap, board, cfg)
	require.Equal(t, roastomatic.PhaseLoad, s.Phase)
	snap.WeightGrams = 50
	s.Evaluate(now, &snap, board, cfg)
	require.Equal(t, roastomatic.PhaseCalibrate, s.Phase)

	// CALIBRATE runs the scale calibration and arms the roast timer.
	now = 5000
	s.Evaluate(now, &snap, board, cfg)
	require.Equal(t, roastomatic.PhaseRoast, s.Phase)
	assert.Equal(t, 1, board.CalibrateCalls)
	assert.Equal(t, cfg.CalibrationWeightGrams, board.CalibratedAt)
	assert.Equal(t, uint32(0), s.ElapsedRoastMs)

	// ROAST tracks drop percent and holds while the heater is on.
	snap.WeightGrams = cfg.ChargeWeightGrams
	snap.HeatDutyPercent = 60
	now = 6000
	s.Evaluate(now, &snap, board, cfg)
	require.Equal(t, roastomatic.PhaseRoast, s.Phase)
	assert.InDelta(t, 0, s.DropPercent, 0.001)
	assert.Equal(t, uint32(1000), s.ElapsedRoastMs)
	assert.Equal(t, uint32(5000), s.ElapsedTotalMs)

	snap.WeightGrams = cfg.ChargeWeightGrams / 2
	s.Evaluate(now, &snap, board, cfg)
	assert.InDelta(t, 50.0, s.DropPercent, 0.01)

	// Cutting heat to at or below the cutoff signals the drop.
	snap.HeatDutyPercent = cfg.HeatCutoffPercent
	s.Evaluate(now, &snap, board, cfg)
	require.Equal(t, roastomatic.PhaseDrop, s.Phase)

	// DROP keeps updating drop percent and finishes once the beans cool.
	snap.BeanTempF = 150
	s.Evaluate(now, &snap, board, cfg)
	require.Equal(t, roastomatic.PhaseDrop, s.Phase)
	snap.BeanTempF = 79
	s.Evaluate(now, &snap, board, cfg)
	require.Equal(t, roastomatic.PhaseDone, s.Phase)

	// DONE is terminal for Evaluate.
	s.Evaluate(now, &snap, board, cfg)
	assert.Equal(t, roastomatic.PhaseDone, s.Phase)
}

func TestRoastSessionDropPercentClampsAtZero(t *testing.T) {
	board := NewSimBoard(0)
	cfg := DefaultRoastConfig()
	s := RoastSession{Phase: roastomatic.PhaseRoast}
	snap := SensorSnapshot{
		WeightGrams:     cfg.ChargeWeightGrams + 10,
		HeatDutyPercent: 80,
	}

	s.Evaluate(0, &snap, board, cfg)

	assert.Equal(t, float32(0), s.DropPercent)
}

func TestRoastSessionDisableChargeCheck(t *testing.T) {
	board := NewSimBoard(0)
	cfg := DefaultRoastConfig()
	cfg.DisableChargeCheck = true
	s := RoastSession{Phase: roastomatic.PhaseLoad}
	var snap SensorSnapshot // empty scale

	s.Evaluate(0, &snap, board, cfg)

	assert.Equal(t, roastomatic.PhaseCalibrate, s.Phase)
}

func TestManualAdvanceWalksEveryPhaseAndWraps(t *testing.T) {
	var s RoastSession

	want := []roastomatic.Phase{
		roastomatic.PhasePreheat,
		roastomatic.PhaseTare,
		roastomatic.PhaseLoad,
		roastomatic.PhaseCalibrate,
		roastomatic.PhaseRoast,
		roastomatic.PhaseDrop,
		roastomatic.PhaseDone,
	}
	for _, phase := range want {
		s.ManualAdvance(100)
		assert.Equal(t, phase, s.Phase)
	}

	// Wrapping past DONE yields a fresh session.
	s.ManualAdvance(100)
	assert.Equal(t, roastomatic.PhaseReady, s.Phase)
	assert.Equal(t, uint32(0), s.ElapsedTotalMs)
	assert.Equal(t, uint32(0), s.ElapsedRoastMs)
}

func TestManualAdvanceSkipsScaleCommands(t *testing.T) {
	board := NewSimBoard(0)
	var s RoastSession

	for i := 0; i < 7; i++ {
		s.ManualAdvance(0)
	}

	assert.Equal(t, 0, board.TareCalls)
	assert.Equal(t, 0, board.CalibrateCalls)
}

func TestRoastTimersSurviveClockWrap(t *testing.T) {
	var s RoastSession

	s.ManualAdvance(0xFFFFFF00) // READY -> PREHEAT, arms total timer
	require.Equal(t, roastomatic.PhasePreheat, s.Phase)

	board := NewSimBoard(0)
	var snap SensorSnapshot
	s.Evaluate(256, &snap, board, DefaultRoastConfig()) // clock wrapped

	assert.Equal(t, uint32(512), s.ElapsedTotalMs)
}
