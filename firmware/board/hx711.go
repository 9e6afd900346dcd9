//go:build tinygo

package board

import (
	"errors"
	"machine"
	"time"
)

// ErrScaleTimeout is returned when the load cell amplifier never signals a
// ready sample.
var ErrScaleTimeout = errors.New("board: scale sample timed out")

const defaultCountsPerGram = 420

// HX711 bit-bangs the 24-bit load cell amplifier on channel A at gain 128.
type HX711 struct {
	clk machine.Pin
	dat machine.Pin

	offset int32
	scale  float32 // counts per gram
}

func NewHX711(clk, dat machine.Pin) *HX711 {
	clk.Configure(machine.PinConfig{Mode: machine.PinOutput})
	dat.Configure(machine.PinConfig{Mode: machine.PinInput})
	clk.Low()
	return &HX711{clk: clk, dat: dat, scale: defaultCountsPerGram}
}

// ReadRaw clocks out one sample, blocking until the chip signals data ready.
// The chip samples at 10 Hz, so this can block for up to ~100 ms.
func (d *HX711) ReadRaw() (int32, error) {
	deadline := time.Now().Add(150 * time.Millisecond)
	for d.dat.Get() {
		if time.Now().After(deadline) {
			return 0, ErrScaleTimeout
		}
		time.Sleep(100 * time.Microsecond)
	}

	var v int32
	for i := 0; i < 24; i++ {
		d.clk.High()
		time.Sleep(time.Microsecond)
		v <<= 1
		if d.dat.Get() {
			v |= 1
		}
		d.clk.Low()
		time.Sleep(time.Microsecond)
	}

	// one extra pulse keeps the chip on channel A, gain 128
	d.clk.High()
	time.Sleep(time.Microsecond)
	d.clk.Low()

	if v&(1<<23) != 0 {
		v -= 1 << 24
	}
	return v, nil
}

// Grams converts a raw sample using the current offset and scale.
func (d *HX711) Grams(raw int32) float32 {
	return float32(raw-d.offset) / d.scale
}

// Tare makes the current average reading the zero point. Blocks for roughly
// a second of samples.
func (d *HX711) Tare() {
	d.offset = d.average(10)
}

// Calibrate sets the counts-per-gram scale from a known mass on the platter.
// Tare first, then place the reference weight.
func (d *HX711) Calibrate(knownGrams float32) {
	if knownGrams <= 0 {
		return
	}
	counts := float32(d.average(10) - d.offset)
	if counts != 0 {
		d.scale = counts / knownGrams
	}
}

func (d *HX711) average(n int) int32 {
	var sum int64
	var got int64
	for i := 0; i < n; i++ {
		if v, err := d.ReadRaw(); err == nil {
			sum += int64(v)
			got++
		}
	}
	if got == 0 {
		return d.offset
	}
	return int32(sum / got)
}
