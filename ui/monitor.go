// Package ui is the live roast dashboard.
package ui

import (
	"context"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/toddjobe/roastomatic"
	"github.com/toddjobe/roastomatic/controller"
)

// Monitor shows the parsed telemetry stream and sends single-byte remote
// commands back to the roaster.
type Monitor struct {
	records  chan roastomatic.Record
	commands io.Writer
}

func NewMonitor(commands io.Writer) *Monitor {
	return &Monitor{
		records:  make(chan roastomatic.Record, 16),
		commands: commands,
	}
}

// Update feeds one record. Records are dropped when the UI is behind rather
// than stalling the telemetry reader.
func (m *Monitor) Update(rec roastomatic.Record) {
	select {
	case m.records <- rec:
	default:
	}
}

func (m *Monitor) send(flag byte) {
	if m.commands == nil {
		return
	}
	fmt.Fprintf(m.commands, "%c", flag)
}

// Run builds the window and blocks until the window closes or ctx is
// cancelled.
func (m *Monitor) Run(ctx context.Context) {
	application := app.New()
	window := application.NewWindow("Roastomatic")

	phaseText := canvas.NewText(roastomatic.PhaseReady.String(), nil)
	phaseText.TextSize = 32

	roastTimer := newTimer("Roast")
	totalTimer := newTimer("Total")

	beanLabel := widget.NewLabel("Bean: ---.- F")
	intakeLabel := widget.NewLabel("Intake: ---.- F")
	weightLabel := widget.NewLabel("Weight: ---.- g")
	dropLabel := widget.NewLabel("Drop: --.- %")

	fanBar := widget.NewProgressBar()
	heatBar := widget.NewProgressBar()

	buttons := container.NewHBox(
		widget.NewButton("Program", func() { m.send('p') }),
		widget.NewButton("Advance", func() { m.send('+') }),
		widget.NewButton("Auto", func() { m.send('a') }),
		widget.NewButton("Tare", func() { m.send('z') }),
		widget.NewButton("Calibrate", func() { m.send('c') }),
	)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case rec := <-m.records:
				fyne.Do(func() {
					phaseText.Text = rec.Phase.String()
					phaseText.Refresh()
					roastTimer.SetMillis(rec.ElapsedRoastMs)
					totalTimer.SetMillis(rec.ElapsedTotalMs)
					if rec.Phase == roastomatic.PhaseRoast {
						roastTimer.Highlight()
					}
					beanLabel.SetText(fmt.Sprintf("Bean: %5.1f F", rec.BeanTempF))
					intakeLabel.SetText(fmt.Sprintf("Intake: %5.1f F", rec.IntakeTempF))
					weightLabel.SetText(fmt.Sprintf("Weight: %5.1f g", rec.WeightGrams))
					dropLabel.SetText(fmt.Sprintf("Drop: %4.1f %%", rec.DropPercent))
					fanBar.SetValue(float64(controller.DutyPercent(rec.FanRaw)) / 100)
					heatBar.SetValue(float64(controller.DutyPercent(rec.HeatRaw)) / 100)
				})
			}
		}
	}()

	go func() {
		<-ctx.Done()
		fyne.Do(application.Quit)
	}()

	window.SetContent(container.NewVBox(
		container.NewHBox(
			container.NewPadded(phaseText),
			layout.NewSpacer(),
			container.NewPadded(roastTimer.text),
			container.NewPadded(totalTimer.text),
		),
		container.NewGridWithColumns(2,
			beanLabel, intakeLabel,
			weightLabel, dropLabel,
		),
		widget.NewLabel("Fan"), fanBar,
		widget.NewLabel("Heat"), heatBar,
		buttons,
	))
	window.Resize(fyne.NewSize(480, 400))
	window.ShowAndRun()
}
