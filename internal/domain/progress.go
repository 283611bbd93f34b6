package domain

import "math"

// nearGoalKg is how close to the target weight counts as "almost there".
const nearGoalKg = 2.0

// GoalProgress returns how far current has moved from start toward target,
// as a percentage capped at 100. A zero-length journey is complete.
func GoalProgress(currentKg, startKg, targetKg float64) int {
	total := math.Abs(targetKg - startKg)
	if total == 0 {
		return 100
	}
	done := math.Abs(currentKg - startKg)
	return min(100, roundInt(done/total*100))
}

// WeightDifference is the absolute distance to the target weight.
func WeightDifference(currentKg, targetKg float64) float64 {
	return math.Abs(currentKg - targetKg)
}

// IsNearGoal reports whether current is within 2 kg of target.
func IsNearGoal(currentKg, targetKg float64) bool {
	return WeightDifference(currentKg, targetKg) <= nearGoalKg
}

// CalorieProgress is consumed/target as a percentage capped at 100.
func CalorieProgress(consumed, target int) int {
	if target == 0 {
		return 0
	}
	return min(100, roundInt(float64(consumed)/float64(target)*100))
}

// WaterProgress is current/goal as a percentage capped at 100.
func WaterProgress(current, goal float64) int {
	if goal == 0 {
		return 0
	}
	return min(100, roundInt(current/goal*100))
}
