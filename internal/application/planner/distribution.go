package planner

import (
	"fmt"

	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
)

// slotPlan names one meal position in the day's schedule
type slotPlan struct {
	Label string
	Slot  nutrition.MealSlot
}

// planSlots returns the named meal positions for a meal count.
// Two meals skip breakfast; snacks are numbered beyond the third meal.
// Counts beyond six fall back to generic "Meal N" positions served from
// the snack bucket.
func planSlots(mealsPerDay int) []slotPlan {
	if mealsPerDay > 6 {
		slots := make([]slotPlan, mealsPerDay)
		for i := range slots {
			slots[i] = slotPlan{fmt.Sprintf("Meal %d", i+1), nutrition.SlotSnack}
		}
		return slots
	}

	switch mealsPerDay {
	case 2:
		return []slotPlan{
			{"Lunch", nutrition.SlotLunch},
			{"Dinner", nutrition.SlotDinner},
		}
	case 3:
		return []slotPlan{
			{"Breakfast", nutrition.SlotBreakfast},
			{"Lunch", nutrition.SlotLunch},
			{"Dinner", nutrition.SlotDinner},
		}
	default:
		slots := []slotPlan{
			{"Breakfast", nutrition.SlotBreakfast},
			{"Lunch", nutrition.SlotLunch},
			{"Dinner", nutrition.SlotDinner},
		}
		if mealsPerDay == 4 {
			return append(slots, slotPlan{"Snack", nutrition.SlotSnack})
		}
		for i := 1; i <= mealsPerDay-3; i++ {
			slots = append(slots, slotPlan{fmt.Sprintf("Snack %d", i), nutrition.SlotSnack})
		}
		return slots
	}
}

// calorieDistribution computes the fraction of the daily budget assigned
// to each meal position. The base tables are adjusted for goal and
// activity, then renormalized so the fractions sum to exactly 1.
func calorieDistribution(mealsPerDay int, goal nutrition.Goal, activity nutrition.ActivityLevel) []float64 {
	if mealsPerDay == 2 {
		// Goal adjustments would skew a 2-meal split too hard, so they
		// flatten the pair instead
		switch goal {
		case nutrition.GoalBuildMuscle:
			return []float64{0.45, 0.55}
		case nutrition.GoalLoseFat:
			return []float64{0.48, 0.52}
		default:
			return []float64{0.40, 0.60}
		}
	}

	var distribution []float64
	switch mealsPerDay {
	case 3:
		distribution = []float64{0.30, 0.40, 0.30}
	case 4:
		distribution = []float64{0.25, 0.30, 0.30, 0.15}
	case 5:
		distribution = []float64{0.20, 0.25, 0.25, 0.20, 0.10}
	default:
		distribution = make([]float64, mealsPerDay)
		for i := range distribution {
			distribution[i] = 1 / float64(mealsPerDay)
		}
	}

	// Positions: 0 breakfast, 1 lunch, 2 dinner, 3 first snack
	switch goal {
	case nutrition.GoalBuildMuscle:
		distribution[1] += 0.05
		distribution[2] += 0.05
		distribution[0] -= 0.05
		if mealsPerDay > 3 {
			distribution[3] -= 0.05
		}
	case nutrition.GoalLoseFat:
		distribution[0] += 0.05
		distribution[2] -= 0.05
	}

	if activity.IsHighOutput() {
		distribution[1] += 0.03
		distribution[2] += 0.03
		distribution[0] -= 0.03
		if mealsPerDay > 3 {
			distribution[3] -= 0.03
		}
	}

	return normalize(distribution)
}

func normalize(fractions []float64) []float64 {
	var sum float64
	for _, f := range fractions {
		sum += f
	}
	if sum <= 0 {
		return fractions
	}
	for i := range fractions {
		fractions[i] /= sum
	}
	return fractions
}

// profileSlots pairs the slot plan with the calorie distribution for a
// profile; both always have length profile.MealsPerDay
func profileSlots(profile mealplan.UserProfile) ([]slotPlan, []float64) {
	return planSlots(profile.MealsPerDay),
		calorieDistribution(profile.MealsPerDay, profile.Goal, profile.Activity)
}
