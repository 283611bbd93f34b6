package domain_test

import (
	"errors"
	"testing"

	"nutritrack/internal/domain"
)

func validInput() domain.ProfileInput {
	return domain.ProfileInput{
		Name: " Ana ", Sex: "female", AgeYears: 30, Height: 165, Weight: 70,
		TargetWeight: 62, ActivityFactor: 1.375, Goal: "lose",
	}
}

func TestProfileInputNormalize(t *testing.T) {
	p, err := validInput().Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Ana" || p.Sex != domain.Female || p.Goal != domain.Lose || p.UnitSystem != domain.Metric {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if p.WeightKg != 70 || p.HeightCm != 165 || p.TargetWeightKg != 62 {
		t.Fatalf("metric values must pass through unchanged: %+v", p)
	}
}

func TestProfileInputNormalize_Imperial(t *testing.T) {
	in := validInput()
	in.UnitSystem = "imperial"
	in.Weight = 176.4
	in.TargetWeight = 165
	in.Height = 70
	in.ActivityFactor = 0
	in.ActivityLevel = "moderate"

	p, err := in.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(p.WeightKg, 80.01, 0.01) {
		t.Errorf("WeightKg = %v", p.WeightKg)
	}
	if !almostEqual(p.HeightCm, 177.8, 0.05) {
		t.Errorf("HeightCm = %v", p.HeightCm)
	}
	if p.ActivityFactor != 1.5 || p.UnitSystem != domain.Imperial {
		t.Errorf("unexpected profile: %+v", p)
	}
}

func TestProfileInputNormalize_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(in *domain.ProfileInput)
		field string
	}{
		{"too young", func(in *domain.ProfileInput) { in.AgeYears = 12 }, "ageYears"},
		{"too old", func(in *domain.ProfileInput) { in.AgeYears = 121 }, "ageYears"},
		{"light", func(in *domain.ProfileInput) { in.Weight = 29 }, "weight"},
		{"heavy target", func(in *domain.ProfileInput) { in.TargetWeight = 301 }, "targetWeight"},
		{"short", func(in *domain.ProfileInput) { in.Height = 99 }, "height"},
		{"bad sex", func(in *domain.ProfileInput) { in.Sex = "" }, "sex"},
		{"bad goal", func(in *domain.ProfileInput) { in.Goal = "bulk" }, "goal"},
		{"bad unit", func(in *domain.ProfileInput) { in.UnitSystem = "stone" }, "unitSystem"},
		{"factor high", func(in *domain.ProfileInput) { in.ActivityFactor = 2.5 }, "activityFactor"},
		{"no factor", func(in *domain.ProfileInput) { in.ActivityFactor = 0 }, "activityFactor"},
		{"unknown level", func(in *domain.ProfileInput) { in.ActivityFactor = 0; in.ActivityLevel = "x" }, "activityLevel"},
		{"imperial light", func(in *domain.ProfileInput) { in.UnitSystem = "lb"; in.Weight = 65; in.TargetWeight = 150; in.Height = 65 }, "weight"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mut(&in)
			_, err := in.Normalize()
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("field = %q; want %q", verr.Field, tc.field)
			}
		})
	}
}
