package domain_test

import (
	"testing"

	"nutritrack/internal/domain"
)

func TestConvertWeight(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to domain.UnitSystem
		want     float64
	}{
		{"kg to lb", 100.0, domain.Metric, domain.Imperial, 220.462},
		{"lb to kg", 220.462, domain.Imperial, domain.Metric, 100.0},
		{"same unit metric", 80.0, domain.Metric, domain.Metric, 80.0},
		{"same unit imperial", 180.0, domain.Imperial, domain.Imperial, 180.0},
		{"unknown units", 50.0, "stone", domain.Metric, 50.0},
		{"zero value", 0, domain.Metric, domain.Imperial, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.ConvertWeight(tc.value, tc.from, tc.to)
			if !almostEqual(got, tc.want, 0.001) {
				t.Errorf("ConvertWeight(%v, %q, %q) = %v; want %v",
					tc.value, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestConvertWeight_RoundTrip(t *testing.T) {
	for _, x := range []float64{0.01, 1, 45.3, 80, 199.99, 300} {
		lb := domain.WeightFromKg(x, domain.Imperial)
		back := domain.WeightToKg(lb, domain.Imperial)
		if !almostEqual(back, x, x*0.001) {
			t.Errorf("round trip of %v kg gave %v", x, back)
		}
	}
}

func TestConvertLength(t *testing.T) {
	if got := domain.LengthFromCm(180, domain.Imperial); !almostEqual(got, 70.866, 0.001) {
		t.Fatalf("LengthFromCm(180) = %v", got)
	}
	if got := domain.LengthToCm(70.866, domain.Imperial); !almostEqual(got, 180, 0.01) {
		t.Fatalf("LengthToCm(70.866) = %v", got)
	}
	if got := domain.LengthFromCm(180, domain.Metric); got != 180 {
		t.Fatalf("LengthFromCm metric = %v", got)
	}
}

func TestParseUnitSystem(t *testing.T) {
	for in, want := range map[string]domain.UnitSystem{
		"metric": domain.Metric, "KG": domain.Metric,
		"Imperial": domain.Imperial, "lb": domain.Imperial,
	} {
		got, err := domain.ParseUnitSystem(in)
		if err != nil || got != want {
			t.Errorf("ParseUnitSystem(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := domain.ParseUnitSystem("stone"); err == nil {
		t.Error("expected error for unknown unit system")
	}
}

func TestFormatWeight(t *testing.T) {
	tests := []struct {
		kg   float64
		unit domain.UnitSystem
		want string
	}{
		{80, domain.Metric, "80kg"},
		{80, domain.Imperial, "176.4lb"},
		{72.46, domain.Metric, "72.5kg"},
		{0, domain.Metric, "--"},
	}
	for _, tc := range tests {
		if got := domain.FormatWeight(tc.kg, tc.unit); got != tc.want {
			t.Errorf("FormatWeight(%v, %q) = %q; want %q", tc.kg, tc.unit, got, tc.want)
		}
	}
}
