package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// press walks a button through one clean press-and-release with the debounce
// window fully elapsed on both edges.
func press(b *Button, in *SimSwitch, clk *ManualClock) {
	in.Pressed = true
	b.Sample()
	clk.Advance(DefaultDebounceMs + 1)
	b.Sample()
	in.Pressed = false
	b.Sample()
	clk.Advance(DefaultDebounceMs + 1)
	b.Sample()
}

func TestButtonCyclesModuloNStates(t *testing.T) {
	clk := &ManualClock{}
	in := &SimSwitch{}
	b := NewButton(in, 4, clk)

	require.Equal(t, 0, b.Count())
	require.False(t, b.Changed())

	for i := 1; i <= 8; i++ {
		press(b, in, clk)
		assert.Equal(t, i%4, b.Count(), "press %d", i)
		assert.True(t, b.Changed())
		assert.False(t, b.Changed(), "Changed must consume the flag")
	}
}

func TestButtonDebounceRejectsBounce(t *testing.T) {
	clk := &ManualClock{}
	in := &SimSwitch{}
	b := NewButton(in, 2, clk)

	// Flicker faster than the debounce window: no activation.
	for i := 0; i < 10; i++ {
		in.Pressed = i%2 == 0
		b.Sample()
		clk.Advance(10)
	}
	in.Pressed = false
	b.Sample()
	clk.Advance(DefaultDebounceMs + 1)
	b.Sample()

	assert.Equal(t, 0, b.Count())
	assert.False(t, b.Changed())
}

func TestButtonAdvancesOnRisingEdgeOnly(t *testing.T) {
	clk := &ManualClock{}
	in := &SimSwitch{}
	b := NewButton(in, 10, clk)

	in.Pressed = true
	b.Sample()
	clk.Advance(DefaultDebounceMs + 1)
	b.Sample()
	assert.Equal(t, 1, b.Count())

	// Holding the button does not keep counting.
	for i := 0; i < 5; i++ {
		clk.Advance(100)
		b.Sample()
	}
	assert.Equal(t, 1, b.Count())

	// Releasing does not count either.
	in.Pressed = false
	b.Sample()
	clk.Advance(DefaultDebounceMs + 1)
	b.Sample()
	assert.Equal(t, 1, b.Count())
}

func TestButtonPressBypassesDebounce(t *testing.T) {
	clk := &ManualClock{}
	b := NewButton(&SimSwitch{}, 3, clk)

	b.Press()
	b.Press()
	assert.Equal(t, 2, b.Count())
	assert.True(t, b.Changed())
}

func TestButtonReset(t *testing.T) {
	clk := &ManualClock{}
	b := NewButton(&SimSwitch{}, 5, clk)

	b.Press()
	b.Press()
	b.Reset()
	assert.Equal(t, 0, b.Count())
}

func TestButtonSetNStatesShrink(t *testing.T) {
	clk := &ManualClock{}
	b := NewButton(&SimSwitch{}, 8, clk)

	for i := 0; i < 5; i++ {
		b.Press()
	}
	require.Equal(t, 5, b.Count())

	b.SetNStates(4)
	assert.Equal(t, 1, b.Count(), "value reduces modulo the new count")

	b.Press()
	assert.Equal(t, 2, b.Count())
}

func TestButtonInvalidNStatesPanics(t *testing.T) {
	clk := &ManualClock{}
	assert.Panics(t, func() { NewButton(&SimSwitch{}, 0, clk) })

	b := NewButton(&SimSwitch{}, 2, clk)
	assert.Panics(t, func() { b.SetNStates(0) })
	assert.Panics(t, func() { b.SetNStates(-1) })
}

func TestButtonDebounceAcrossClockWrap(t *testing.T) {
	clk := &ManualClock{}
	clk.Set(0xFFFFFFF0)
	in := &SimSwitch{}
	b := NewButton(in, 2, clk)

	in.Pressed = true
	b.Sample()
	clk.Advance(DefaultDebounceMs + 1) // wraps past zero
	b.Sample()

	assert.Equal(t, 1, b.Count())
}
