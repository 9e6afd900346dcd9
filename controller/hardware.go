package controller

import "fmt"

// Board is the sensor/actuator adapter the control loop drives. Reads are
// synchronous; Tare and CalibrateScale may block for a couple of seconds and
// stall the whole loop while they run.
type Board interface {
	ReadIntakeTempF() float32
	ReadBeanTempF() float32
	ReadRawWeight() int32
	ReadWeightGrams() float32
	Tare()
	CalibrateScale(knownGrams float32)
	SetHeaterDuty(percent int)
	SetFanDuty(percent int)
}

// AnalogReader reads one raw ADC value in [0, MaxPotValue].
type AnalogReader interface {
	Get() int
}

// Display accepts a staged multi-line text buffer and a text size hint. The
// core never touches pixels.
type Display interface {
	Render(lines []string, textSize int) error
}

const (
	// ADCBitDepth is the resolution of the potentiometer ADC inputs.
	ADCBitDepth = 12
	// MaxPotValue is the largest raw potentiometer reading.
	MaxPotValue = 1<<ADCBitDepth - 1
)

// SensorSnapshot is the shared sensor state for one loop iteration. It is
// owned by the Controller and refreshed in place as each sampling gate fires;
// everything else reads it and never writes it.
type SensorSnapshot struct {
	IntakeTempF float32
	BeanTempF   float32
	RawWeight   int32
	WeightGrams float32

	FanPotRaw  int
	HeatPotRaw int

	FanDutyPercent  int
	HeatDutyPercent int
	// Dial units are hundredths of a 0-10 dial position, reflecting the
	// potentiometer's 300 degree mechanical sweep.
	FanDialUnits  int
	HeatDialUnits int
}

// DutyPercent maps a raw ADC reading onto a 0-100 duty cycle.
func DutyPercent(raw int) int {
	if raw < 0 {
		return 0
	}
	if raw > MaxPotValue {
		raw = MaxPotValue
	}
	return raw * 100 / MaxPotValue
}

// DialHundredths maps a raw ADC reading onto hundredths of a dial unit. The
// pots turn 300 of 360 degrees, so full scale is 300/360*10 = 8.33 units.
func DialHundredths(raw int) int {
	if raw < 0 {
		return 0
	}
	if raw > MaxPotValue {
		raw = MaxPotValue
	}
	return raw * 2500 / (3 * MaxPotValue)
}

// FormatDial renders dial hundredths as "w.hh".
func FormatDial(hundredths int) string {
	return fmt.Sprintf("%d.%02d", hundredths/100, hundredths%100)
}

// FormatMillis renders a millisecond duration as "mm:ss".
func FormatMillis(ms uint32) string {
	s := ms / 1000
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
