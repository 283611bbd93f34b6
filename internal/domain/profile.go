package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Profile holds the biometric data of one user, normalized to metric.
type Profile struct {
	UserID         int64      `json:"userId"`
	Name           string     `json:"name"`
	Sex            Sex        `json:"sex"`
	AgeYears       int        `json:"ageYears"`
	HeightCm       float64    `json:"heightCm"`
	WeightKg       float64    `json:"weightKg"`
	StartWeightKg  float64    `json:"startWeightKg"`
	TargetWeightKg float64    `json:"targetWeightKg"`
	ActivityFactor float64    `json:"activityFactor"`
	Goal           Goal       `json:"goal"`
	UnitSystem     UnitSystem `json:"unitSystem"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Metrics extracts the calculation inputs.
func (p *Profile) Metrics() ProfileMetrics {
	return ProfileMetrics{
		WeightKg:       p.WeightKg,
		HeightCm:       p.HeightCm,
		AgeYears:       p.AgeYears,
		Sex:            p.Sex,
		ActivityFactor: p.ActivityFactor,
		Goal:           p.Goal,
		TargetWeightKg: p.TargetWeightKg,
	}
}

// ProfileRepository is the port for profile persistence.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	SaveProfile(ctx context.Context, p *Profile) error
	UpdateProfileWeight(ctx context.Context, userID int64, weightKg float64, updatedAt time.Time) error
}

// ValidationError reports a single rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

type bounds struct{ min, max float64 }

func (b bounds) check(field string, v float64, unit string) error {
	if v < b.min {
		return invalid(field, "minimum is %g%s", b.min, unit)
	}
	if v > b.max {
		return invalid(field, "maximum is %g%s", b.max, unit)
	}
	return nil
}

var (
	ageBounds            = bounds{13, 120}
	activityFactorBounds = bounds{1.2, 1.9}

	weightBounds = map[UnitSystem]bounds{Metric: {30, 300}, Imperial: {66, 661}}
	heightBounds = map[UnitSystem]bounds{Metric: {100, 250}, Imperial: {39, 98}}
)

// CheckWeight validates a body weight given in unit.
func CheckWeight(field string, v float64, unit UnitSystem) error {
	return weightBounds[unit].check(field, v, unit.WeightLabel())
}

// CheckHeight validates a body height given in unit.
func CheckHeight(field string, v float64, unit UnitSystem) error {
	return heightBounds[unit].check(field, v, unit.LengthLabel())
}

// ProfileInput is a profile as submitted, in the user's unit system.
// ActivityLevel is used when ActivityFactor is zero.
type ProfileInput struct {
	Name           string  `json:"name"`
	Sex            string  `json:"sex"`
	AgeYears       int     `json:"ageYears"`
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	TargetWeight   float64 `json:"targetWeight"`
	ActivityFactor float64 `json:"activityFactor"`
	ActivityLevel  string  `json:"activityLevel"`
	Goal           string  `json:"goal"`
	UnitSystem     string  `json:"unitSystem"`
}

// Normalize validates the input and converts it into a metric Profile
// without identity or timestamps.
func (in ProfileInput) Normalize() (Profile, error) {
	unit := Metric
	if in.UnitSystem != "" {
		u, err := ParseUnitSystem(in.UnitSystem)
		if err != nil {
			return Profile{}, invalid("unitSystem", "must be metric or imperial")
		}
		unit = u
	}
	sex, err := ParseSex(in.Sex)
	if err != nil {
		return Profile{}, invalid("sex", "must be male or female")
	}
	goal, err := ParseGoal(in.Goal)
	if err != nil {
		return Profile{}, invalid("goal", "must be lose, gain or maintain")
	}
	if err := ageBounds.check("ageYears", float64(in.AgeYears), ""); err != nil {
		return Profile{}, err
	}
	if err := CheckWeight("weight", in.Weight, unit); err != nil {
		return Profile{}, err
	}
	if err := CheckWeight("targetWeight", in.TargetWeight, unit); err != nil {
		return Profile{}, err
	}
	if err := CheckHeight("height", in.Height, unit); err != nil {
		return Profile{}, err
	}

	factor := in.ActivityFactor
	if factor == 0 && in.ActivityLevel != "" {
		f, ok := ActivityFactorFor(in.ActivityLevel)
		if !ok {
			return Profile{}, invalid("activityLevel", "unknown level %q", in.ActivityLevel)
		}
		factor = f
	}
	if err := activityFactorBounds.check("activityFactor", factor, ""); err != nil {
		return Profile{}, err
	}

	return Profile{
		Name:           strings.TrimSpace(in.Name),
		Sex:            sex,
		AgeYears:       in.AgeYears,
		HeightCm:       LengthToCm(in.Height, unit),
		WeightKg:       WeightToKg(in.Weight, unit),
		TargetWeightKg: WeightToKg(in.TargetWeight, unit),
		ActivityFactor: factor,
		Goal:           goal,
		UnitSystem:     unit,
	}, nil
}
