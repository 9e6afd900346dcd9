package controller

// RateGate limits a subsystem to firing at most once per period. The check
// (IsDue) is separate from the commit (Fire) so a caller can test readiness
// and still decide to skip a cycle without desynchronizing the cadence.
type RateGate struct {
	periodMs   uint32
	lastFireMs uint32
}

// NewRateGate creates a gate with the given period in milliseconds. The first
// fire becomes due once periodMs has elapsed from zero.
func NewRateGate(periodMs uint32) *RateGate {
	return &RateGate{periodMs: periodMs}
}

// IsDue reports whether the period has elapsed since the last Fire. It has no
// side effects, so polling it any number of times does not shift the cadence.
// Elapsed time is computed by uint32 subtraction and tolerates clock wrap.
func (g *RateGate) IsDue(now uint32) bool {
	return now-g.lastFireMs >= g.periodMs
}

// Fire rearms the gate for the next period.
func (g *RateGate) Fire(now uint32) {
	g.lastFireMs = now
}
