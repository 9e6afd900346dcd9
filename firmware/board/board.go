//go:build tinygo

// Package board adapts the roaster's peripherals to the control loop's
// hardware interfaces.
package board

import (
	"machine"

	"github.com/toddjobe/roastomatic/controller"
)

// Config names the peripherals and pins the roaster is wired to.
type Config struct {
	SPI        *machine.SPI
	IntakeCS   machine.Pin
	BeanCS     machine.Pin
	ScaleClock machine.Pin
	ScaleData  machine.Pin

	HeaterPWM PWM
	HeaterPin machine.Pin
	FanPWM    PWM
	FanPin    machine.Pin
}

// Board drives the real roaster hardware. Sensor reads hold the last good
// value when a read fails, so a flaky thermocouple yields a stale reading
// rather than a zero.
type Board struct {
	intake *MAX6675
	bean   *MAX6675
	scale  *HX711
	heater pwmPin
	fan    pwmPin

	lastIntakeF float32
	lastBeanF   float32
	lastRaw     int32
}

var _ controller.Board = (*Board)(nil)

func New(cfg Config) (*Board, error) {
	err := cfg.SPI.Configure(machine.SPIConfig{
		Frequency: 4 * machine.MHz,
		Mode:      0,
	})
	if err != nil {
		return nil, err
	}

	heater, err := newPWMPin(cfg.HeaterPWM, cfg.HeaterPin)
	if err != nil {
		return nil, err
	}
	fan, err := newPWMPin(cfg.FanPWM, cfg.FanPin)
	if err != nil {
		return nil, err
	}

	return &Board{
		intake: NewMAX6675(cfg.SPI, cfg.IntakeCS),
		bean:   NewMAX6675(cfg.SPI, cfg.BeanCS),
		scale:  NewHX711(cfg.ScaleClock, cfg.ScaleData),
		heater: heater,
		fan:    fan,
	}, nil
}

func (b *Board) ReadIntakeTempF() float32 {
	if f, err := b.intake.ReadF(); err == nil {
		b.lastIntakeF = f
	}
	return b.lastIntakeF
}

func (b *Board) ReadBeanTempF() float32 {
	if f, err := b.bean.ReadF(); err == nil {
		b.lastBeanF = f
	}
	return b.lastBeanF
}

func (b *Board) ReadRawWeight() int32 {
	if v, err := b.scale.ReadRaw(); err == nil {
		b.lastRaw = v
	}
	return b.lastRaw
}

func (b *Board) ReadWeightGrams() float32 {
	return b.scale.Grams(b.ReadRawWeight())
}

// Tare blocks for several scale samples.
func (b *Board) Tare() {
	b.scale.Tare()
}

// CalibrateScale blocks for several scale samples.
func (b *Board) CalibrateScale(knownGrams float32) {
	b.scale.Calibrate(knownGrams)
}

func (b *Board) SetHeaterDuty(percent int) {
	b.heater.SetPercent(percent)
}

func (b *Board) SetFanDuty(percent int) {
	b.fan.SetPercent(percent)
}
