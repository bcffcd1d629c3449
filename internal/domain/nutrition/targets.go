package nutrition

import "math"

// DeriveTargets computes the daily macro targets for a calorie budget.
// The split depends on the goal, with a keto override and a carb cap
// when the user is diabetic.
func DeriveTargets(dailyCalories float64, goal Goal, diet DietType, diabetic bool) (MacroTargets, error) {
	if dailyCalories <= 0 {
		return MacroTargets{}, ErrInvalidCalorieTarget
	}

	var proteinPct, carbsPct, fatsPct float64
	switch goal {
	case GoalLoseFat:
		proteinPct, carbsPct, fatsPct = 0.35, 0.35, 0.30
	case GoalBuildMuscle:
		proteinPct, carbsPct, fatsPct = 0.30, 0.45, 0.25
	case GoalImproveWellbeing:
		proteinPct, carbsPct, fatsPct = 0.25, 0.50, 0.25
	default:
		proteinPct, carbsPct, fatsPct = 0.25, 0.45, 0.30
	}

	if diet == DietTypeKeto {
		proteinPct, carbsPct, fatsPct = 0.20, 0.05, 0.75
	}

	if diabetic {
		carbsPct = math.Min(carbsPct, 0.40)
		proteinPct = math.Max(proteinPct, 0.30)
		fatsPct = 1 - proteinPct - carbsPct
	}

	targets := MacroTargets{
		Macros: Macros{
			Protein:  math.Round(dailyCalories * proteinPct / CaloriesPerGramProtein),
			Carbs:    math.Round(dailyCalories * carbsPct / CaloriesPerGramCarbs),
			Fats:     math.Round(dailyCalories * fatsPct / CaloriesPerGramFats),
			Calories: math.Round(dailyCalories),
		},
		ProteinPct: proteinPct,
		CarbsPct:   carbsPct,
		FatsPct:    fatsPct,
	}

	return targets, nil
}
