package domain

import (
	"fmt"
	"math"
	"strings"
)

const (
	kgToLb = 2.20462
	cmToIn = 0.3937
)

// UnitSystem selects metric (kg, cm) or imperial (lb, in) display units.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

// ParseUnitSystem accepts the system name or one of its unit labels.
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "kg", "cm":
		return Metric, nil
	case "imperial", "lb", "lbs", "in":
		return Imperial, nil
	}
	return "", fmt.Errorf("unknown unit system %q", s)
}

// WeightLabel returns "kg" or "lb".
func (u UnitSystem) WeightLabel() string {
	if u == Imperial {
		return "lb"
	}
	return "kg"
}

// LengthLabel returns "cm" or "in".
func (u UnitSystem) LengthLabel() string {
	if u == Imperial {
		return "in"
	}
	return "cm"
}

// ConvertWeight converts a weight value between unit systems.
// Returns v unchanged if from == to or if the units are unrecognised.
func ConvertWeight(v float64, from, to UnitSystem) float64 {
	if from == to {
		return v
	}
	if from == Metric && to == Imperial {
		return v * kgToLb
	}
	if from == Imperial && to == Metric {
		return v / kgToLb
	}
	return v
}

// ConvertLength converts a length value between unit systems.
func ConvertLength(v float64, from, to UnitSystem) float64 {
	if from == to {
		return v
	}
	if from == Metric && to == Imperial {
		return v * cmToIn
	}
	if from == Imperial && to == Metric {
		return v / cmToIn
	}
	return v
}

// WeightFromKg expresses a stored kilogram value in the target unit system.
func WeightFromKg(kg float64, to UnitSystem) float64 {
	return ConvertWeight(kg, Metric, to)
}

// WeightToKg normalizes a weight given in from for storage.
func WeightToKg(v float64, from UnitSystem) float64 {
	return ConvertWeight(v, from, Metric)
}

// LengthFromCm expresses a stored centimetre value in the target unit system.
func LengthFromCm(cm float64, to UnitSystem) float64 {
	return ConvertLength(cm, Metric, to)
}

// LengthToCm normalizes a length given in from for storage.
func LengthToCm(v float64, from UnitSystem) float64 {
	return ConvertLength(v, from, Metric)
}

// FormatWeight renders a kilogram value for display, e.g. "176.4lb".
// Non-positive or NaN values render as "--".
func FormatWeight(kg float64, unit UnitSystem) string {
	if kg <= 0 || math.IsNaN(kg) {
		return "--"
	}
	return fmt.Sprintf("%s%s", trimFloat(round1(WeightFromKg(kg, unit))), unit.WeightLabel())
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
