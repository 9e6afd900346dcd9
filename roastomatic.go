package roastomatic

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase is a stage of the roast process.
type Phase int

const (
	PhaseReady Phase = iota
	PhasePreheat
	PhaseTare
	PhaseLoad
	PhaseCalibrate
	PhaseRoast
	PhaseDrop
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhasePreheat:
		return "Preheat"
	case PhaseTare:
		return "Tare"
	case PhaseLoad:
		return "Load"
	case PhaseCalibrate:
		return "Calibrate"
	case PhaseRoast:
		return "Roast"
	case PhaseDrop:
		return "Drop"
	case PhaseDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Next goes to the next roast phase, wrapping from Done back to Ready
func (p Phase) Next() Phase {
	if p == PhaseDone {
		return PhaseReady
	}
	return p + 1
}

// ParsePhase parses a phase name as produced by Phase.String.
func ParsePhase(s string) (Phase, error) {
	for p := PhaseReady; p <= PhaseDone; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return PhaseReady, fmt.Errorf("unknown phase: %q", s)
}

const recordFields = 9

// Record is one telemetry line emitted by the roaster. This is the only
// externally stable wire format: the firmware emits it on the serial port and
// the host tools parse it back.
type Record struct {
	ElapsedRoastMs uint32
	ElapsedTotalMs uint32
	Phase          Phase
	FanRaw         int
	HeatRaw        int
	BeanTempF      float32
	IntakeTempF    float32
	WeightGrams    float32
	DropPercent    float32
}

// String formats the record as a single comma-delimited line (no newline).
func (r Record) String() string {
	return fmt.Sprintf("%d,%d,%s,%d,%d,%.1f,%.1f,%.1f,%.1f",
		r.ElapsedRoastMs, r.ElapsedTotalMs, r.Phase,
		r.FanRaw, r.HeatRaw,
		r.BeanTempF, r.IntakeTempF, r.WeightGrams, r.DropPercent)
}

// ParseRecord parses one telemetry line back into a Record.
func ParseRecord(line string) (Record, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) != recordFields {
		return Record{}, fmt.Errorf("invalid record: expected %d comma-separated fields, got %d", recordFields, len(parts))
	}

	elapsedRoast, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid roast timer: %w", err)
	}
	elapsedTotal, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid total timer: %w", err)
	}
	phase, err := ParsePhase(parts[2])
	if err != nil {
		return Record{}, err
	}
	fanRaw, err := strconv.Atoi(parts[3])
	if err != nil {
		return Record{}, fmt.Errorf("invalid fan reading: %w", err)
	}
	heatRaw, err := strconv.Atoi(parts[4])
	if err != nil {
		return Record{}, fmt.Errorf("invalid heat reading: %w", err)
	}
	beanTemp, err := strconv.ParseFloat(parts[5], 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid bean temperature: %w", err)
	}
	intakeTemp, err := strconv.ParseFloat(parts[6], 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid intake temperature: %w", err)
	}
	weight, err := strconv.ParseFloat(parts[7], 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid weight: %w", err)
	}
	drop, err := strconv.ParseFloat(parts[8], 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid drop percent: %w", err)
	}

	return Record{
		ElapsedRoastMs: uint32(elapsedRoast),
		ElapsedTotalMs: uint32(elapsedTotal),
		Phase:          phase,
		FanRaw:         fanRaw,
		HeatRaw:        heatRaw,
		BeanTempF:      float32(beanTemp),
		IntakeTempF:    float32(intakeTemp),
		WeightGrams:    float32(weight),
		DropPercent:    float32(drop),
	}, nil
}
