package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2/canvas"
)

// timer is a mm:ss readout driven by the millisecond timers in the telemetry
// stream rather than wall clock, so it stays honest across serial stalls.
type timer struct {
	label string
	text  *canvas.Text
}

func newTimer(label string) *timer {
	t := &timer{
		label: label,
		text:  canvas.NewText(label+" 00:00", nil),
	}
	t.text.TextSize = 20
	return t
}

// SetMillis must run on the fyne goroutine (inside fyne.Do).
func (t *timer) SetMillis(ms uint32) {
	s := ms / 1000
	t.text.Text = fmt.Sprintf("%s %02d:%02d", t.label, s/60, s%60)
	t.text.Refresh()
}

func (t *timer) Highlight() {
	t.text.Color = color.RGBA{R: 139, G: 0, B: 0, A: 255}
}
