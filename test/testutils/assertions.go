// Package testutils provides custom assertions and testing utilities
package testutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
)

// MealPlanAssertions provides plan-specific assertion methods
type MealPlanAssertions struct {
	t *testing.T
}

// NewMealPlanAssertions creates a new meal plan assertions helper
func NewMealPlanAssertions(t *testing.T) *MealPlanAssertions {
	return &MealPlanAssertions{t: t}
}

// ValidPlan asserts that a generated plan is structurally sound: the
// expected number of meals, each with a name, a template, at least one
// portion, and sub-scores inside [0,1].
func (pa *MealPlanAssertions) ValidPlan(meals []mealplan.Meal, expectedMeals int) {
	require.Len(pa.t, meals, expectedMeals, "Plan should contain one meal per slot")

	for _, meal := range meals {
		assert.NotEmpty(pa.t, meal.Name, "Meal should have a name")
		assert.NotEmpty(pa.t, meal.TemplateName, "Meal should record its template")
		assert.NotEmpty(pa.t, meal.GenerationReason, "Meal should explain its selection")
		require.NotEmpty(pa.t, meal.Items, "Meal should have at least one portion")

		pa.ValidScores(meal.Scores)

		for _, item := range meal.Items {
			assert.Greater(pa.t, item.Grams, 0.0, "Portion grams should be positive")
			assert.Equal(pa.t, math.Round(item.Grams), item.Grams, "Portion grams should be whole")
		}
	}
}

// ValidScores asserts that every sub-score lies in [0,1]
func (pa *MealPlanAssertions) ValidScores(scores mealplan.ScoreBreakdown) {
	for name, score := range map[string]float64{
		"macro alignment":  scores.MacroAlignment,
		"health condition": scores.HealthCondition,
		"variety":          scores.Variety,
		"user preference":  scores.UserPreference,
		"total":            scores.Total,
	} {
		assert.GreaterOrEqual(pa.t, score, 0.0, "Score %s should not be negative", name)
		assert.LessOrEqual(pa.t, score, 1.0, "Score %s should not exceed 1", name)
	}
}

// CaloriesNearTargets asserts that each meal's calories land near its
// slot target. A meal may sit outside the configured tolerance only by
// the optimizer's neighborhood trade: the scale search moves at most 20%
// off the calorie-exact scale, so the deviation stays bounded by the
// larger of the two, plus whole-gram rounding.
func (pa *MealPlanAssertions) CaloriesNearTargets(meals []mealplan.Meal, slotCalories []float64, tolerance float64) {
	require.Len(pa.t, meals, len(slotCalories), "One slot target per meal expected")

	const neighborhoodStep = 0.2
	const roundingMargin = 0.02
	limit := math.Max(tolerance, neighborhoodStep) + roundingMargin

	for i, meal := range meals {
		target := slotCalories[i]
		require.Greater(pa.t, target, 0.0, "Slot target should be positive")

		deviation := math.Abs(meal.Total.Calories-target) / target
		assert.LessOrEqual(pa.t, deviation, limit,
			"Meal %s calories %.0f too far from slot target %.0f",
			meal.Name, meal.Total.Calories, target)
	}
}

// ScaleWithinBounds asserts that every meal's portion scale stayed
// inside the configured clamp range.
func (pa *MealPlanAssertions) ScaleWithinBounds(meals []mealplan.Meal, minScale, maxScale float64) {
	for _, meal := range meals {
		assert.GreaterOrEqual(pa.t, meal.ScaleFactor, minScale,
			"Meal %s scale below minimum", meal.Name)
		assert.LessOrEqual(pa.t, meal.ScaleFactor, maxScale,
			"Meal %s scale above maximum", meal.Name)
	}
}

// TotalsMatchPortions asserts that each meal's total macros equal the
// sum of its portion macros.
func (pa *MealPlanAssertions) TotalsMatchPortions(meals []mealplan.Meal) {
	for _, meal := range meals {
		var sum nutrition.Macros
		for _, item := range meal.Items {
			sum = sum.Add(item.Macros)
		}
		assert.InDelta(pa.t, sum.Calories, meal.Total.Calories, 0.01,
			"Meal %s calories should match its portions", meal.Name)
		assert.InDelta(pa.t, sum.Protein, meal.Total.Protein, 0.01,
			"Meal %s protein should match its portions", meal.Name)
		assert.InDelta(pa.t, sum.Carbs, meal.Total.Carbs, 0.01,
			"Meal %s carbs should match its portions", meal.Name)
		assert.InDelta(pa.t, sum.Fats, meal.Total.Fats, 0.01,
			"Meal %s fats should match its portions", meal.Name)
	}
}
