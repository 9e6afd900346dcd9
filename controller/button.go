package controller

// DigitalReader reads one debounceable digital input.
type DigitalReader interface {
	Get() bool
}

// DefaultDebounceMs is the debounce window applied to every button.
const DefaultDebounceMs = 50

// Button turns a noisy digital input into a stable cyclic counter. Each
// debounced rising edge counts as one activation and advances the counter by
// one, wrapping modulo the configured number of states. A button can mean
// different things to different programs, so the modulus is reconfigurable
// with SetNStates.
type Button struct {
	input      DigitalReader
	clock      Clock
	debounceMs uint32

	nStates int
	value   int
	changed bool

	lastRaw  bool   // last raw sample
	stable   bool   // last accepted logical level
	lastEdge uint32 // time of the last raw level change
}

// NewButton creates a button with nStates cyclic states. nStates < 1 is a
// programming error and panics.
func NewButton(input DigitalReader, nStates int, clock Clock) *Button {
	if nStates < 1 {
		panic("controller: button state count must be at least 1")
	}
	return &Button{
		input:      input,
		clock:      clock,
		debounceMs: DefaultDebounceMs,
		nStates:    nStates,
	}
}

// Sample reads the raw input and applies debouncing. Once the input has held a
// new level for longer than the debounce window the level is accepted, and an
// accepted rising edge advances the counter.
func (b *Button) Sample() {
	raw := b.input.Get()
	now := b.clock.Millis()

	if raw != b.lastRaw {
		b.lastRaw = raw
		b.lastEdge = now
	}

	if raw != b.stable && now-b.lastEdge >= b.debounceMs {
		b.stable = raw
		if raw {
			b.advance()
		}
	}
}

// Press registers one activation directly, bypassing the debounce path. Used
// by remote serial commands and by the manual test-advance path.
func (b *Button) Press() {
	b.advance()
}

func (b *Button) advance() {
	b.value = (b.value + 1) % b.nStates
	b.changed = true
}

// Count returns the current cyclic value without side effects.
func (b *Button) Count() int {
	return b.value
}

// Changed reports whether the value changed since the last call, consuming the
// flag.
func (b *Button) Changed() bool {
	c := b.changed
	b.changed = false
	return c
}

// Reset forces the value back to 0 without waiting for a press.
func (b *Button) Reset() {
	b.value = 0
}

// SetNStates reconfigures the modulus. Shrinking below the current value
// reduces the value modulo the new count immediately, so Count stays in range.
// k < 1 is a programming error and panics.
func (b *Button) SetNStates(k int) {
	if k < 1 {
		panic("controller: button state count must be at least 1")
	}
	b.nStates = k
	b.value %= k
}
