package planner

import (
	"testing"

	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalorieDistribution_SumsToOne(t *testing.T) {
	goals := []nutrition.Goal{
		nutrition.GoalLoseFat,
		nutrition.GoalBuildMuscle,
		nutrition.GoalMaintainWeight,
		nutrition.GoalImproveWellbeing,
	}
	activities := []nutrition.ActivityLevel{
		nutrition.ActivitySedentary,
		nutrition.ActivityVeryActive,
	}

	for meals := 2; meals <= 6; meals++ {
		for _, goal := range goals {
			for _, activity := range activities {
				fractions := calorieDistribution(meals, goal, activity)

				require.Len(t, fractions, meals)
				var sum float64
				for _, f := range fractions {
					assert.Greater(t, f, 0.0)
					sum += f
				}
				assert.InDelta(t, 1.0, sum, 1e-6,
					"meals=%d goal=%s activity=%s", meals, goal, activity)
			}
		}
	}
}

func TestCalorieDistribution_ThreeMealBaseline(t *testing.T) {
	fractions := calorieDistribution(3, nutrition.GoalMaintainWeight, nutrition.ActivitySedentary)

	assert.InDelta(t, 0.30, fractions[0], 1e-9)
	assert.InDelta(t, 0.40, fractions[1], 1e-9)
	assert.InDelta(t, 0.30, fractions[2], 1e-9)
}

func TestCalorieDistribution_BuildMuscleShiftsToLunchAndDinner(t *testing.T) {
	baseline := calorieDistribution(3, nutrition.GoalMaintainWeight, nutrition.ActivitySedentary)
	shifted := calorieDistribution(3, nutrition.GoalBuildMuscle, nutrition.ActivitySedentary)

	assert.Less(t, shifted[0], baseline[0])
	assert.Greater(t, shifted[1], baseline[1])
	assert.Greater(t, shifted[2], baseline[2])
}

func TestCalorieDistribution_TwoMealsFlattenGoalAdjustments(t *testing.T) {
	fractions := calorieDistribution(2, nutrition.GoalBuildMuscle, nutrition.ActivitySedentary)
	assert.Equal(t, []float64{0.45, 0.55}, fractions)

	fractions = calorieDistribution(2, nutrition.GoalLoseFat, nutrition.ActivityVeryActive)
	assert.Equal(t, []float64{0.48, 0.52}, fractions)
}

func TestCalorieDistribution_HighActivityFeedsTrainingMeals(t *testing.T) {
	baseline := calorieDistribution(4, nutrition.GoalMaintainWeight, nutrition.ActivitySedentary)
	active := calorieDistribution(4, nutrition.GoalMaintainWeight, nutrition.ActivityExtremelyActive)

	assert.Greater(t, active[1], baseline[1])
	assert.Greater(t, active[2], baseline[2])
	assert.Less(t, active[0], baseline[0])
	assert.Less(t, active[3], baseline[3])
}

func TestPlanSlots(t *testing.T) {
	t.Run("two meals skip breakfast", func(t *testing.T) {
		slots := planSlots(2)

		require.Len(t, slots, 2)
		assert.Equal(t, "Lunch", slots[0].Label)
		assert.Equal(t, nutrition.SlotLunch, slots[0].Slot)
		assert.Equal(t, "Dinner", slots[1].Label)
	})

	t.Run("four meals add one snack", func(t *testing.T) {
		slots := planSlots(4)

		require.Len(t, slots, 4)
		assert.Equal(t, "Snack", slots[3].Label)
		assert.Equal(t, nutrition.SlotSnack, slots[3].Slot)
	})

	t.Run("five meals number the snacks", func(t *testing.T) {
		slots := planSlots(5)

		require.Len(t, slots, 5)
		assert.Equal(t, "Snack 1", slots[3].Label)
		assert.Equal(t, "Snack 2", slots[4].Label)
	})
}
