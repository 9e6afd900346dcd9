package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDutyPercentCoversFullRange(t *testing.T) {
	assert.Equal(t, 0, DutyPercent(0))
	assert.Equal(t, 100, DutyPercent(MaxPotValue))

	for raw := 0; raw <= MaxPotValue; raw += 7 {
		d := DutyPercent(raw)
		assert.GreaterOrEqual(t, d, 0)
		assert.LessOrEqual(t, d, 100)
		assert.Equal(t, raw*100/MaxPotValue, d)
	}
}

func TestDutyPercentClampsOutOfRange(t *testing.T) {
	assert.Equal(t, 0, DutyPercent(-5))
	assert.Equal(t, 100, DutyPercent(MaxPotValue+1))
}

func TestDialHundredths(t *testing.T) {
	assert.Equal(t, 0, DialHundredths(0))
	// Full deflection is 300/360 of a 0-10 dial: 8.33.
	assert.Equal(t, 833, DialHundredths(MaxPotValue))
	assert.Equal(t, 833, DialHundredths(MaxPotValue+100))
}

func TestFormatDial(t *testing.T) {
	assert.Equal(t, "0.00", FormatDial(0))
	assert.Equal(t, "4.05", FormatDial(405))
	assert.Equal(t, "8.33", FormatDial(DialHundredths(MaxPotValue)))
}

func TestFormatMillis(t *testing.T) {
	assert.Equal(t, "00:00", FormatMillis(0))
	assert.Equal(t, "00:59", FormatMillis(59999))
	assert.Equal(t, "12:34", FormatMillis(754000))
}
