package domain

// Tip is a meal suggestion for the current part of the day.
type Tip struct {
	Meal string `json:"meal"`
	Text string `json:"text"`
}

type tipSet struct {
	breakfast, lunch, snack, dinner, focus string
}

var tips = map[Goal]tipSet{
	Gain: {
		breakfast: "Oat pancakes with banana.",
		lunch:     "150g or more of protein with rice.",
		snack:     "Nuts and yogurt.",
		dinner:    "A full meal before bed.",
		focus:     "Don't skip meals. Keep the surplus consistent.",
	},
	Lose: {
		breakfast: "Scrambled eggs with vegetables.",
		lunch:     "Fill half the plate with salad.",
		snack:     "Fruit or a protein yogurt.",
		dinner:    "Light protein with vegetables.",
		focus:     "Stay in the deficit. Consistency wins.",
	},
	Maintain: {
		breakfast: "Balance fruit, protein and fibre.",
		lunch:     "Keep portions balanced.",
		snack:     "A light snack if you need one.",
		dinner:    "A moderate meal.",
		focus:     "Consistency is the secret. Keep the pace.",
	},
}

// TipFor picks the suggestion for goal at the given local hour (0-23).
// Unknown goals get the maintenance tips.
func TipFor(goal Goal, hour int) Tip {
	set, ok := tips[goal]
	if !ok {
		set = tips[Maintain]
	}
	switch {
	case hour >= 5 && hour < 12:
		return Tip{Meal: "breakfast", Text: set.breakfast}
	case hour >= 12 && hour < 15:
		return Tip{Meal: "lunch", Text: set.lunch}
	case hour >= 15 && hour < 19:
		return Tip{Meal: "snack", Text: set.snack}
	case hour >= 19 && hour < 23:
		return Tip{Meal: "dinner", Text: set.dinner}
	default:
		return Tip{Meal: "focus", Text: set.focus}
	}
}
