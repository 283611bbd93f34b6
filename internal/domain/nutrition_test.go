package domain_test

import (
	"math"
	"testing"

	"nutritrack/internal/domain"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestEstimateBasalRate(t *testing.T) {
	got := domain.EstimateBasalRate(80, 180, 30, domain.Male)
	if got != 1780 {
		t.Fatalf("EstimateBasalRate(80, 180, 30, male) = %v; want 1780", got)
	}
	got = domain.EstimateBasalRate(60, 165, 25, domain.Female)
	if want := 600 + 1031.25 - 125 - 161; got != want {
		t.Fatalf("EstimateBasalRate(60, 165, 25, female) = %v; want %v", got, want)
	}
}

func TestEstimateBasalRate_SexOffset(t *testing.T) {
	inputs := []struct {
		weight, height float64
		age            int
	}{
		{80, 180, 30},
		{55.5, 162.3, 41},
		{120, 201, 19},
		{30, 100, 120},
	}
	for _, in := range inputs {
		m := domain.EstimateBasalRate(in.weight, in.height, in.age, domain.Male)
		f := domain.EstimateBasalRate(in.weight, in.height, in.age, domain.Female)
		if !almostEqual(m-f, 166, 1e-9) {
			t.Errorf("male-female for %+v = %v; want 166", in, m-f)
		}
	}
}

func TestEstimateBasalRate_NoClamping(t *testing.T) {
	if got := domain.EstimateBasalRate(1, 10, 90, domain.Female); got >= 0 {
		t.Fatalf("expected negative basal rate for extreme input, got %v", got)
	}
}

func TestEstimateMaintenance(t *testing.T) {
	for _, tc := range []struct{ b, f float64 }{
		{1780, 1.375}, {1500, 1.2}, {-200, 1.9}, {0, 1.5}, {2000.25, 0.3},
	} {
		if got := domain.EstimateMaintenance(tc.b, tc.f); got != tc.b*tc.f {
			t.Errorf("EstimateMaintenance(%v, %v) = %v; want %v", tc.b, tc.f, got, tc.b*tc.f)
		}
	}
}

func TestSelectCalorieTarget(t *testing.T) {
	tests := []struct {
		name        string
		maintenance float64
		goal        domain.Goal
		current     float64
		target      float64
		wantKcal    int
		wantReached bool
	}{
		{"lose in progress", 2447.5, domain.Lose, 80, 75, 2080, false},
		{"lose reached", 2447.5, domain.Lose, 74, 75, 2448, true},
		{"lose at target", 2447.5, domain.Lose, 75, 75, 2448, true},
		{"gain in progress", 2000, domain.Gain, 60, 65, 2300, false},
		{"gain reached", 2000, domain.Gain, 66, 65, 2000, true},
		{"gain at target", 2000, domain.Gain, 65, 65, 2000, true},
		{"maintain below target", 2100.4, domain.Maintain, 60, 80, 2100, true},
		{"maintain above target", 2100.6, domain.Maintain, 90, 80, 2101, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.SelectCalorieTarget(tc.maintenance, tc.goal, tc.current, tc.target)
			if got.CalorieTarget != tc.wantKcal || got.GoalReached != tc.wantReached {
				t.Fatalf("SelectCalorieTarget = %+v; want {%d %v}", got, tc.wantKcal, tc.wantReached)
			}
		})
	}
}

func TestSelectCalorieTarget_MaintainIgnoresWeights(t *testing.T) {
	for _, w := range [][2]float64{{50, 100}, {100, 50}, {70, 70}} {
		got := domain.SelectCalorieTarget(1999.5, domain.Maintain, w[0], w[1])
		if got.CalorieTarget != int(math.Round(1999.5)) || !got.GoalReached {
			t.Errorf("maintain with weights %v = %+v", w, got)
		}
	}
}

func TestAllocateMacros(t *testing.T) {
	got := domain.AllocateMacros(80, 2080)
	want := domain.MacroBreakdown{ProteinGrams: 160, FatGrams: 64, CarbGrams: 216}
	if got != want {
		t.Fatalf("AllocateMacros(80, 2080) = %+v; want %+v", got, want)
	}
	if got.Kcal() != 2080 {
		t.Fatalf("Kcal() = %d; want 2080", got.Kcal())
	}
}

func TestAllocateMacros_CarbFloor(t *testing.T) {
	got := domain.AllocateMacros(150, 1500)
	if got.CarbGrams != 0 {
		t.Fatalf("expected carbs clamped to 0, got %d", got.CarbGrams)
	}
	if got.ProteinGrams != 300 || got.FatGrams != 120 {
		t.Fatalf("protein/fat must not depend on the target, got %+v", got)
	}
}

func TestAllocateMacros_TruncatesCarbs(t *testing.T) {
	// 867 kcal remain; 217 g would be 868 kcal.
	got := domain.AllocateMacros(80, 2083)
	if got.CarbGrams != 216 || got.Kcal() != 2080 {
		t.Fatalf("AllocateMacros(80, 2083) = %+v (%d kcal); want 216 g carbs", got, got.Kcal())
	}
}

func TestAllocateMacros_NeverOvershoots(t *testing.T) {
	for weight := 40.0; weight <= 140; weight += 7.3 {
		for target := 1800; target <= 4200; target += 37 {
			m := domain.AllocateMacros(weight, target)
			if m.CarbGrams == 0 {
				continue
			}
			if m.Kcal() > target {
				t.Fatalf("AllocateMacros(%v, %d) = %+v sums to %d", weight, target, m, m.Kcal())
			}
			if target-m.Kcal() >= 4 {
				t.Fatalf("AllocateMacros(%v, %d) leaves %d kcal unallocated", weight, target, target-m.Kcal())
			}
		}
	}
}

func TestComputePlan_Scenarios(t *testing.T) {
	m := domain.ProfileMetrics{
		WeightKg: 80, HeightCm: 180, AgeYears: 30, Sex: domain.Male,
		ActivityFactor: 1.375, Goal: domain.Lose, TargetWeightKg: 75,
	}
	plan := domain.ComputePlan(m)
	if plan.BasalRate != 1780 || plan.MaintenanceRate != 2447.5 {
		t.Fatalf("unexpected rates: %+v", plan.EnergyTarget)
	}
	if plan.CalorieTarget != 2080 || plan.GoalReached {
		t.Fatalf("unexpected target: %+v", plan.EnergyTarget)
	}
	if plan.Macros != (domain.MacroBreakdown{ProteinGrams: 160, FatGrams: 64, CarbGrams: 216}) {
		t.Fatalf("unexpected macros: %+v", plan.Macros)
	}

	m.WeightKg = 74
	et := domain.ComputeEnergyTarget(m)
	if !et.GoalReached || et.CalorieTarget != int(math.Round(et.MaintenanceRate)) {
		t.Fatalf("expected maintenance once past target, got %+v", et)
	}
}

func TestParseEnums(t *testing.T) {
	if s, err := domain.ParseSex(" Female "); err != nil || s != domain.Female {
		t.Errorf("ParseSex(Female) = %q, %v", s, err)
	}
	if _, err := domain.ParseSex("x"); err == nil {
		t.Error("expected error for unknown sex")
	}
	if g, err := domain.ParseGoal("GAIN"); err != nil || g != domain.Gain {
		t.Errorf("ParseGoal(GAIN) = %q, %v", g, err)
	}
	if _, err := domain.ParseGoal("bulk"); err == nil {
		t.Error("expected error for unknown goal")
	}
}

func TestActivityFactorFor(t *testing.T) {
	if f, ok := domain.ActivityFactorFor("light"); !ok || f != 1.375 {
		t.Fatalf("ActivityFactorFor(light) = %v, %v", f, ok)
	}
	if _, ok := domain.ActivityFactorFor("couch"); ok {
		t.Fatal("expected unknown level")
	}
}
