package domain

import (
	"fmt"
	"math"
	"strings"
)

// Sex selects the Mifflin-St Jeor constant.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex accepts "male"/"female" or their initials.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	}
	return "", fmt.Errorf("unknown sex %q", s)
}

// Goal is the direction the user wants their weight to move.
type Goal string

const (
	Lose     Goal = "lose"
	Gain     Goal = "gain"
	Maintain Goal = "maintain"
)

// ParseGoal accepts "lose", "gain" or "maintain".
func ParseGoal(s string) (Goal, error) {
	switch g := Goal(strings.ToLower(strings.TrimSpace(s))); g {
	case Lose, Gain, Maintain:
		return g, nil
	}
	return "", fmt.Errorf("unknown goal %q", s)
}

const (
	surplusMultiplier = 1.15
	deficitMultiplier = 0.85

	proteinPerKg = 2.0
	fatPerKg     = 0.8

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// ProfileMetrics are the raw inputs of the calorie pipeline.
type ProfileMetrics struct {
	WeightKg       float64 `json:"weightKg"`
	HeightCm       float64 `json:"heightCm"`
	AgeYears       int     `json:"ageYears"`
	Sex            Sex     `json:"sex"`
	ActivityFactor float64 `json:"activityFactor"`
	Goal           Goal    `json:"goal"`
	TargetWeightKg float64 `json:"targetWeightKg"`
}

// EnergyTarget is derived on demand and never stored.
type EnergyTarget struct {
	BasalRate       float64 `json:"basalRate"`
	MaintenanceRate float64 `json:"maintenanceRate"`
	CalorieTarget   int     `json:"calorieTarget"`
	GoalReached     bool    `json:"goalReached"`
}

// CalorieSelection is the outcome of SelectCalorieTarget.
type CalorieSelection struct {
	CalorieTarget int  `json:"calorieTarget"`
	GoalReached   bool `json:"goalReached"`
}

// MacroBreakdown splits a calorie target into grams.
type MacroBreakdown struct {
	ProteinGrams int `json:"proteinGrams"`
	FatGrams     int `json:"fatGrams"`
	CarbGrams    int `json:"carbGrams"`
}

// Kcal returns the energy the breakdown accounts for.
func (m MacroBreakdown) Kcal() int {
	return m.ProteinGrams*kcalPerGramProtein + m.FatGrams*kcalPerGramFat + m.CarbGrams*kcalPerGramCarbs
}

// NutritionPlan bundles the energy target with its macro split.
type NutritionPlan struct {
	EnergyTarget
	Macros MacroBreakdown `json:"macros"`
}

// EstimateBasalRate computes BMR in kcal/day with Mifflin-St Jeor.
// Inputs are not validated; extreme values may yield a negative rate.
func EstimateBasalRate(weightKg, heightCm float64, ageYears int, sex Sex) float64 {
	basal := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if sex == Male {
		return basal + 5
	}
	return basal - 161
}

// EstimateMaintenance scales BMR by the activity factor.
func EstimateMaintenance(basalRate, activityFactor float64) float64 {
	return basalRate * activityFactor
}

// SelectCalorieTarget applies a fixed 15% surplus or deficit until the target
// weight is reached. Maintain is always considered reached.
func SelectCalorieTarget(maintenanceRate float64, goal Goal, currentWeightKg, targetWeightKg float64) CalorieSelection {
	switch {
	case goal == Maintain,
		goal == Gain && currentWeightKg >= targetWeightKg,
		goal == Lose && currentWeightKg <= targetWeightKg:
		return CalorieSelection{CalorieTarget: roundInt(maintenanceRate), GoalReached: true}
	case goal == Gain:
		return CalorieSelection{CalorieTarget: roundInt(maintenanceRate * surplusMultiplier)}
	default:
		return CalorieSelection{CalorieTarget: roundInt(maintenanceRate * deficitMultiplier)}
	}
}

// AllocateMacros fixes protein and fat per kilogram of body weight and lets
// carbohydrate absorb the rest. Carbs floor at zero, in which case the sum is
// protein and fat alone.
//
// Carb grams are truncated rather than rounded: rounding remaining/4 could put
// the macro energy up to 2 kcal over the target, and the macros must never
// exceed it.
func AllocateMacros(weightKg float64, calorieTarget int) MacroBreakdown {
	protein := roundInt(weightKg * proteinPerKg)
	fat := roundInt(weightKg * fatPerKg)
	remaining := calorieTarget - (protein*kcalPerGramProtein + fat*kcalPerGramFat)

	carbs := 0
	if remaining > 0 {
		carbs = remaining / kcalPerGramCarbs
	}
	return MacroBreakdown{ProteinGrams: protein, FatGrams: fat, CarbGrams: carbs}
}

// ComputeEnergyTarget runs the metabolic, expenditure and target selection
// steps in order.
func ComputeEnergyTarget(m ProfileMetrics) EnergyTarget {
	basal := EstimateBasalRate(m.WeightKg, m.HeightCm, m.AgeYears, m.Sex)
	maintenance := EstimateMaintenance(basal, m.ActivityFactor)
	sel := SelectCalorieTarget(maintenance, m.Goal, m.WeightKg, m.TargetWeightKg)
	return EnergyTarget{
		BasalRate:       basal,
		MaintenanceRate: maintenance,
		CalorieTarget:   sel.CalorieTarget,
		GoalReached:     sel.GoalReached,
	}
}

// ComputePlan extends ComputeEnergyTarget with the macro allocation.
func ComputePlan(m ProfileMetrics) NutritionPlan {
	et := ComputeEnergyTarget(m)
	return NutritionPlan{EnergyTarget: et, Macros: AllocateMacros(m.WeightKg, et.CalorieTarget)}
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// ActivityLevel is a named activity factor offered to users.
type ActivityLevel struct {
	Name        string  `json:"name"`
	Factor      float64 `json:"factor"`
	Description string  `json:"description"`
}

// ActivityLevels lists the selectable levels, lowest first.
var ActivityLevels = []ActivityLevel{
	{Name: "sedentary", Factor: 1.2, Description: "little or no exercise"},
	{Name: "light", Factor: 1.375, Description: "exercise 1-3 days/week"},
	{Name: "moderate", Factor: 1.5, Description: "exercise 3-5 days/week"},
	{Name: "intense", Factor: 1.7, Description: "exercise 6-7 days/week"},
	{Name: "very_intense", Factor: 1.9, Description: "athlete, training twice a day"},
}

// ActivityFactorFor looks up a level by name.
func ActivityFactorFor(name string) (float64, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, l := range ActivityLevels {
		if l.Name == name {
			return l.Factor, true
		}
	}
	return 0, false
}
