package twchart

import (
	"context"
	"time"

	"github.com/toddjobe/roastomatic"
)

// API is the subset of the charting service used while recording a roast.
type API interface {
	CreateSession(ctx context.Context, beanName string, probes Probes) (string, error)
	SetStartTime(ctx context.Context, startTime time.Time) error
	AddEvent(ctx context.Context, note string, now time.Time) error
	AddStage(ctx context.Context, name string, now time.Time) error
	Done(ctx context.Context) error
}

// NoopAPI discards everything. Used when no chart server address is
// configured so the telemetry path doesn't branch.
type NoopAPI struct{}

var _ API = NoopAPI{}

func (NoopAPI) CreateSession(ctx context.Context, beanName string, probes Probes) (string, error) {
	return "", nil
}
func (NoopAPI) SetStartTime(ctx context.Context, startTime time.Time) error { return nil }
func (NoopAPI) AddEvent(ctx context.Context, note string, now time.Time) error { return nil }
func (NoopAPI) AddStage(ctx context.Context, name string, now time.Time) error { return nil }
func (NoopAPI) Done(ctx context.Context) error                                 { return nil }

// Recorder turns the roaster's telemetry stream into chart session stages.
// Each phase change becomes a stage (or a point event for the momentary tare
// and calibrate phases), entering the roast phase stamps the session start
// time, and the done phase closes the session.
type Recorder struct {
	api API

	last     roastomatic.Phase
	haveLast bool

	now func() time.Time
}

func NewRecorder(api API) *Recorder {
	return &Recorder{api: api, now: time.Now}
}

// Start creates the session the subsequent stages land in.
func (r *Recorder) Start(ctx context.Context, beanName string, probes Probes) error {
	_, err := r.api.CreateSession(ctx, beanName, probes)
	return err
}

// Observe feeds one telemetry record to the recorder. Records that don't
// change the phase are ignored.
func (r *Recorder) Observe(ctx context.Context, rec roastomatic.Record) error {
	if !r.haveLast {
		r.last = rec.Phase
		r.haveLast = true
		return nil
	}
	if rec.Phase == r.last {
		return nil
	}
	r.last = rec.Phase

	now := r.now()
	switch rec.Phase {
	case roastomatic.PhaseTare, roastomatic.PhaseCalibrate:
		// momentary phases chart better as point events than stages
		return r.api.AddEvent(ctx, rec.Phase.String(), now)
	case roastomatic.PhaseRoast:
		if err := r.api.SetStartTime(ctx, now); err != nil {
			return err
		}
		return r.api.AddStage(ctx, rec.Phase.String(), now)
	case roastomatic.PhaseDone:
		if err := r.api.AddStage(ctx, rec.Phase.String(), now); err != nil {
			return err
		}
		return r.api.Done(ctx)
	default:
		return r.api.AddStage(ctx, rec.Phase.String(), now)
	}
}
