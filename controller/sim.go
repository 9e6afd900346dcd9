package controller

import (
	"github.com/chewxy/math32"
)

// SimPot is a settable analog input.
type SimPot struct {
	Value int
}

func (p *SimPot) Get() int { return p.Value }

// SimSwitch is a settable digital input.
type SimSwitch struct {
	Pressed bool
}

func (s *SimSwitch) Get() bool { return s.Pressed }

// SimDisplay records rendered frames instead of drawing them.
type SimDisplay struct {
	Lines    []string
	TextSize int
	Renders  int
}

func (d *SimDisplay) Render(lines []string, textSize int) error {
	d.Lines = lines
	d.TextSize = textSize
	d.Renders++
	return nil
}

// SimBoard stands in for the roaster hardware. Tests set its fields directly;
// the host simulator additionally calls Advance to run a first-order thermal
// model driven by the last written heater duty.
type SimBoard struct {
	IntakeTempF float32
	BeanTempF   float32
	RawWeight   int32
	WeightGrams float32

	FanDuty  int
	HeatDuty int

	TareCalls      int
	CalibrateCalls int
	CalibratedAt   float32

	// Thermal model parameters, used only via Advance.
	AmbientF     float32
	HeaterGainF  float32 // degrees above ambient at 100% duty
	IntakeTauMs  float32
	BeanTauMs    float32
	EvapPerDegMs float32 // grams lost per ms per degree of bean temp above boiling
}

// NewSimBoard returns a board at ambient with a loaded charge.
func NewSimBoard(chargeGrams float32) *SimBoard {
	return &SimBoard{
		IntakeTempF: 70,
		BeanTempF:   70,
		WeightGrams: chargeGrams,
		AmbientF:    70,
		HeaterGainF: 480,
		IntakeTauMs: 8000,
		BeanTauMs:   20000,
		EvapPerDegMs: 2e-7,
	}
}

func (b *SimBoard) ReadIntakeTempF() float32 { return b.IntakeTempF }
func (b *SimBoard) ReadBeanTempF() float32   { return b.BeanTempF }
func (b *SimBoard) ReadRawWeight() int32     { return b.RawWeight }
func (b *SimBoard) ReadWeightGrams() float32 { return b.WeightGrams }

func (b *SimBoard) Tare() {
	b.TareCalls++
	b.RawWeight = 0
	b.WeightGrams = 0
}

func (b *SimBoard) CalibrateScale(knownGrams float32) {
	b.CalibrateCalls++
	b.CalibratedAt = knownGrams
}

func (b *SimBoard) SetHeaterDuty(percent int) { b.HeatDuty = percent }
func (b *SimBoard) SetFanDuty(percent int)    { b.FanDuty = percent }

// Advance steps the thermal model by dtMs. Intake air lags the duty-driven
// target, beans lag the intake air, and beans above boiling lose moisture
// weight.
func (b *SimBoard) Advance(dtMs uint32) {
	dt := float32(dtMs)

	target := b.AmbientF + b.HeaterGainF*float32(b.HeatDuty)/100
	b.IntakeTempF += (target - b.IntakeTempF) * lag(dt, b.IntakeTauMs)
	b.BeanTempF += (b.IntakeTempF - b.BeanTempF) * lag(dt, b.BeanTauMs)

	if over := b.BeanTempF - 212; over > 0 && b.WeightGrams > 0 {
		b.WeightGrams -= over * dt * b.EvapPerDegMs * b.WeightGrams
		if b.WeightGrams < 0 {
			b.WeightGrams = 0
		}
	}
	b.RawWeight = int32(b.WeightGrams * 420)
}

func lag(dt, tau float32) float32 {
	if tau <= 0 {
		return 1
	}
	return 1 - math32.Exp(-dt/tau)
}
