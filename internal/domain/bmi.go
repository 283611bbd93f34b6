package domain

// BMICategory is a labelled BMI band with its display color.
type BMICategory struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var (
	Underweight = BMICategory{Label: "Underweight", Color: "#FFA500"}
	NormalBMI   = BMICategory{Label: "Normal", Color: "#32CD32"}
	Overweight  = BMICategory{Label: "Overweight", Color: "#FFA500"}
	Obese       = BMICategory{Label: "Obese", Color: "#FF6B6B"}
)

// WeightRange is an inclusive band of body weights in kilograms.
type WeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// In expresses the range in the given unit system, rounded for display.
func (r WeightRange) In(unit UnitSystem) WeightRange {
	return WeightRange{
		Min: round1(WeightFromKg(r.Min, unit)),
		Max: round1(WeightFromKg(r.Max, unit)),
	}
}

// ComputeBMI returns weight / height(m)^2 rounded to one decimal.
// Zero height yields +Inf or NaN; callers validate first.
func ComputeBMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100
	return round1(weightKg / (h * h))
}

// BMICategoryFor classifies a BMI value. The 18.5 lower bound applies to both
// sexes here, unlike HealthyWeightRange.
func BMICategoryFor(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalBMI
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// HealthyWeightRange returns the weights between BMI 18.5 (female) or 19
// (male) and 24.9 for the given height.
func HealthyWeightRange(heightCm float64, sex Sex) WeightRange {
	h := heightCm / 100
	minBMI := 19.0
	if sex == Female {
		minBMI = 18.5
	}
	return WeightRange{
		Min: round1(minBMI * h * h),
		Max: round1(24.9 * h * h),
	}
}
