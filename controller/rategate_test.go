package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateGateFirstFire(t *testing.T) {
	g := NewRateGate(250)

	assert.False(t, g.IsDue(0))
	assert.False(t, g.IsDue(249))
	assert.True(t, g.IsDue(250))
	assert.True(t, g.IsDue(1000))
}

func TestRateGateIsDueHasNoSideEffects(t *testing.T) {
	g := NewRateGate(250)

	for i := 0; i < 10; i++ {
		assert.True(t, g.IsDue(300))
	}

	g.Fire(300)
	assert.False(t, g.IsDue(300))
	assert.False(t, g.IsDue(549))
	assert.True(t, g.IsDue(550))
}

func TestRateGateCadence(t *testing.T) {
	g := NewRateGate(100)

	fires := 0
	for now := uint32(0); now <= 1000; now += 10 {
		if g.IsDue(now) {
			g.Fire(now)
			fires++
		}
	}
	// due at 100, 200, ..., 1000
	assert.Equal(t, 10, fires)
}

func TestRateGateSurvivesClockWrap(t *testing.T) {
	g := NewRateGate(250)

	g.Fire(0xFFFFFF38) // 200 ms before wrap

	assert.False(t, g.IsDue(0xFFFFFFFF))
	assert.False(t, g.IsDue(49)) // 249 ms elapsed across the wrap
	assert.True(t, g.IsDue(50))  // 250 ms elapsed
}
