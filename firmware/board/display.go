//go:build tinygo

package board

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// DisplayConfig wires the I2C OLED.
type DisplayConfig struct {
	Bus *machine.I2C
	SDA machine.Pin
	SCL machine.Pin

	Address       uint16
	Width, Height int16
}

// OLED renders staged text frames on an SSD1306 display.
type OLED struct {
	dev    ssd1306.Device
	height int16
}

func NewOLED(cfg DisplayConfig) (*OLED, error) {
	if cfg.Address == 0 {
		cfg.Address = 0x3C
	}
	if cfg.Width == 0 {
		cfg.Width, cfg.Height = 128, 64
	}

	err := cfg.Bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       cfg.SDA,
		SCL:       cfg.SCL,
	})
	if err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(cfg.Bus)
	dev.Configure(ssd1306.Config{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Address:  cfg.Address,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearDisplay()

	return &OLED{dev: dev, height: cfg.Height}, nil
}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Render draws the lines top to bottom. The text size hint scales the line
// pitch; lines that don't fit are dropped.
func (o *OLED) Render(lines []string, textSize int) error {
	if textSize < 1 {
		textSize = 1
	}

	o.dev.ClearBuffer()
	y := int16(10 * textSize)
	for _, line := range lines {
		if y > o.height {
			break
		}
		tinyfont.WriteLine(&o.dev, &proggy.TinySZ8pt7b, 2, y, line, white)
		y += int16(10 * textSize)
	}
	return o.dev.Display()
}
