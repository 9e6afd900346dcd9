// Package config holds the host-side configuration for the roastomatic tools.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/toddjobe/roastomatic/controller"
)

// Config represents the application configuration.
type Config struct {
	Serial  SerialConfig  `yaml:"serial"`
	Data    DataConfig    `yaml:"data"`
	Roast   RoastConfig   `yaml:"roast"`
	Cadence CadenceConfig `yaml:"cadence"`
	TWChart TWChartConfig `yaml:"twchart"`
}

// SerialConfig contains serial port configuration.
type SerialConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

// DataConfig says where telemetry logs are written.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// RoastConfig contains the roast thresholds and batch weights.
type RoastConfig struct {
	ChargeWeightGrams      float32 `yaml:"charge_weight_grams"`
	CalibrationWeightGrams float32 `yaml:"calibration_weight_grams"`
	PreheatThresholdF      float32 `yaml:"preheat_threshold_f"`
	DoneThresholdF         float32 `yaml:"done_threshold_f"`
	HeatCutoffPercent      int     `yaml:"heat_cutoff_percent"`
	// DisableChargeCheck makes the LOAD phase advance without waiting for
	// beans on the scale.
	DisableChargeCheck bool `yaml:"disable_charge_check"`
}

// CadenceConfig contains the polling loop periods in milliseconds.
type CadenceConfig struct {
	TemperatureMs uint32 `yaml:"temperature_ms"`
	WeightMs      uint32 `yaml:"weight_ms"`
	DisplayMs     uint32 `yaml:"display_ms"`
	TelemetryMs   uint32 `yaml:"telemetry_ms"`
}

// TWChartConfig contains the session upload settings. An empty address
// disables uploading.
type TWChartConfig struct {
	Address string `yaml:"address"`
	Session string `yaml:"session"`
	Probes  string `yaml:"probes"`
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	roast := controller.DefaultRoastConfig()
	cadence := controller.DefaultConfig()

	return &Config{
		Serial: SerialConfig{
			Port:     "/dev/ttyACM0",
			BaudRate: 115200,
		},
		Data: DataConfig{
			Dir: "data",
		},
		Roast: RoastConfig{
			ChargeWeightGrams:      roast.ChargeWeightGrams,
			CalibrationWeightGrams: roast.CalibrationWeightGrams,
			PreheatThresholdF:      roast.PreheatThresholdF,
			DoneThresholdF:         roast.DoneThresholdF,
			HeatCutoffPercent:      roast.HeatCutoffPercent,
		},
		Cadence: CadenceConfig{
			TemperatureMs: cadence.TemperaturePeriodMs,
			WeightMs:      cadence.WeightPeriodMs,
			DisplayMs:     cadence.DisplayPeriodMs,
			TelemetryMs:   cadence.TelemetryPeriodMs,
		},
		TWChart: TWChartConfig{
			Probes: "1=Intake,2=Beans",
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Controller maps the file configuration onto the control core's config.
func (c *Config) Controller() controller.Config {
	cc := controller.DefaultConfig()
	cc.Roast = controller.RoastConfig{
		ChargeWeightGrams:      c.Roast.ChargeWeightGrams,
		CalibrationWeightGrams: c.Roast.CalibrationWeightGrams,
		PreheatThresholdF:      c.Roast.PreheatThresholdF,
		DoneThresholdF:         c.Roast.DoneThresholdF,
		HeatCutoffPercent:      c.Roast.HeatCutoffPercent,
		DisableChargeCheck:     c.Roast.DisableChargeCheck,
	}
	cc.TemperaturePeriodMs = c.Cadence.TemperatureMs
	cc.WeightPeriodMs = c.Cadence.WeightMs
	cc.DisplayPeriodMs = c.Cadence.DisplayMs
	cc.TelemetryPeriodMs = c.Cadence.TelemetryMs
	return cc
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.BaudRate == 0 {
		c.Serial.BaudRate = def.Serial.BaudRate
	}

	if c.Data.Dir == "" {
		c.Data.Dir = def.Data.Dir
	}

	if c.Roast.ChargeWeightGrams == 0 {
		c.Roast.ChargeWeightGrams = def.Roast.ChargeWeightGrams
	}
	if c.Roast.CalibrationWeightGrams == 0 {
		c.Roast.CalibrationWeightGrams = def.Roast.CalibrationWeightGrams
	}
	if c.Roast.PreheatThresholdF == 0 {
		c.Roast.PreheatThresholdF = def.Roast.PreheatThresholdF
	}
	if c.Roast.DoneThresholdF == 0 {
		c.Roast.DoneThresholdF = def.Roast.DoneThresholdF
	}
	if c.Roast.HeatCutoffPercent == 0 {
		c.Roast.HeatCutoffPercent = def.Roast.HeatCutoffPercent
	}

	if c.Cadence.TemperatureMs == 0 {
		c.Cadence.TemperatureMs = def.Cadence.TemperatureMs
	}
	if c.Cadence.WeightMs == 0 {
		c.Cadence.WeightMs = def.Cadence.WeightMs
	}
	if c.Cadence.DisplayMs == 0 {
		c.Cadence.DisplayMs = def.Cadence.DisplayMs
	}
	if c.Cadence.TelemetryMs == 0 {
		c.Cadence.TelemetryMs = def.Cadence.TelemetryMs
	}

	if c.TWChart.Probes == "" {
		c.TWChart.Probes = def.TWChart.Probes
	}
}
