package twchart

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toddjobe/roastomatic"
)

type recordingAPI struct {
	calls []string
}

func (a *recordingAPI) CreateSession(ctx context.Context, beanName string, probes Probes) (string, error) {
	a.calls = append(a.calls, "create "+beanName)
	return "id", nil
}

func (a *recordingAPI) SetStartTime(ctx context.Context, startTime time.Time) error {
	a.calls = append(a.calls, "start-time")
	return nil
}

func (a *recordingAPI) AddEvent(ctx context.Context, note string, now time.Time) error {
	a.calls = append(a.calls, "event "+note)
	return nil
}

func (a *recordingAPI) AddStage(ctx context.Context, name string, now time.Time) error {
	a.calls = append(a.calls, "stage "+name)
	return nil
}

func (a *recordingAPI) Done(ctx context.Context) error {
	a.calls = append(a.calls, "done")
	return nil
}

func TestRecorderTurnsPhaseChangesIntoStages(t *testing.T) {
	api := &recordingAPI{}
	r := NewRecorder(api)
	ctx := context.Background()

	require.NoError(t, r.Start(ctx, "Test Bean", nil))

	phases := []roastomatic.Phase{
		roastomatic.PhaseReady,
		roastomatic.PhasePreheat,
		roastomatic.PhasePreheat, // repeat: no stage
		roastomatic.PhaseTare,
		roastomatic.PhaseLoad,
		roastomatic.PhaseCalibrate,
		roastomatic.PhaseRoast,
		roastomatic.PhaseRoast,
		roastomatic.PhaseDrop,
		roastomatic.PhaseDone,
	}
	for _, p := range phases {
		require.NoError(t, r.Observe(ctx, roastomatic.Record{Phase: p}))
	}

	assert.Equal(t, []string{
		"create Test Bean",
		"stage Preheat",
		"event Tare",
		"stage Load",
		"event Calibrate",
		"start-time",
		"stage Roast",
		"stage Drop",
		"stage Done",
		"done",
	}, api.calls)
}

func TestRecorderIgnoresSteadyState(t *testing.T) {
	api := &recordingAPI{}
	r := NewRecorder(api)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, r.Observe(ctx, roastomatic.Record{Phase: roastomatic.PhaseRoast}))
	}

	assert.Empty(t, api.calls, "first record only seeds the phase tracker")
}

func TestParseProbes(t *testing.T) {
	probes, err := ParseProbes("1=Intake,2=Beans")
	require.NoError(t, err)
	require.Len(t, probes, 2)
	assert.Equal(t, "Intake", probes[0].Name)
	assert.Equal(t, "Beans", probes[1].Name)

	for _, input := range []string{"Intake", "0=Intake", "x=Intake"} {
		_, err := ParseProbes(input)
		assert.Error(t, err, fmt.Sprintf("input %q", input))
	}
}
