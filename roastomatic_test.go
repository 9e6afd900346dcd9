package roastomatic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseStringRoundTrip(t *testing.T) {
	for p := PhaseReady; p <= PhaseDone; p++ {
		parsed, err := ParsePhase(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
}

func TestParsePhaseUnknown(t *testing.T) {
	_, err := ParsePhase("Cooling")
	assert.Error(t, err)
}

func TestPhaseNextWraps(t *testing.T) {
	assert.Equal(t, PhasePreheat, PhaseReady.Next())
	assert.Equal(t, PhaseDrop, PhaseRoast.Next())
	assert.Equal(t, PhaseReady, PhaseDone.Next())
}

func TestRecordString(t *testing.T) {
	r := Record{
		ElapsedRoastMs: 754000,
		ElapsedTotalMs: 1002000,
		Phase:          PhaseRoast,
		FanRaw:         2048,
		HeatRaw:        4095,
		BeanTempF:      401.5,
		IntakeTempF:    455.2,
		WeightGrams:    78.3,
		DropPercent:    13.1,
	}

	assert.Equal(t, "754000,1002000,Roast,2048,4095,401.5,455.2,78.3,13.1", r.String())
}

func TestParseRecordRoundTrip(t *testing.T) {
	want := Record{
		ElapsedRoastMs: 12345,
		ElapsedTotalMs: 67890,
		Phase:          PhaseDrop,
		FanRaw:         100,
		HeatRaw:        0,
		BeanTempF:      250.5,
		IntakeTempF:    300.1,
		WeightGrams:    80,
		DropPercent:    11.2,
	}

	got, err := ParseRecord(want.String())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseRecordTrimsWhitespace(t *testing.T) {
	got, err := ParseRecord("0,0,Ready,0,0,70.0,70.0,0.0,0.0\r\n")
	require.NoError(t, err)
	assert.Equal(t, PhaseReady, got.Phase)
}

func TestParseRecordErrors(t *testing.T) {
	tests := map[string]string{
		"too few fields":     "1,2,Roast",
		"too many fields":    "1,2,Roast,3,4,5.0,6.0,7.0,8.0,9.0",
		"bad roast timer":    "x,2,Roast,3,4,5.0,6.0,7.0,8.0",
		"negative timer":     "-1,2,Roast,3,4,5.0,6.0,7.0,8.0",
		"unknown phase":      "1,2,Bake,3,4,5.0,6.0,7.0,8.0",
		"bad fan reading":    "1,2,Roast,none,4,5.0,6.0,7.0,8.0",
		"bad temperature":    "1,2,Roast,3,4,warm,6.0,7.0,8.0",
		"bad weight":         "1,2,Roast,3,4,5.0,6.0,heavy,8.0",
		"bad drop percent":   "1,2,Roast,3,4,5.0,6.0,7.0,full",
		"empty line":         "",
	}

	for name, line := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRecord(line)
			assert.Error(t, err)
		})
	}
}
