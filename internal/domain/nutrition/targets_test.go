package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TargetsTestSuite provides a test suite for macro target derivation
type TargetsTestSuite struct {
	suite.Suite
}

// TestDeriveTargets tests target derivation scenarios
func (suite *TargetsTestSuite) TestDeriveTargets() {
	suite.Run("MaintainWeight_ShouldUseDefaultSplit", func() {
		// Arrange
		dailyCalories := 2000.0

		// Act
		targets, err := DeriveTargets(dailyCalories, GoalMaintainWeight, DietTypeOmnivore, false)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 0.25, targets.ProteinPct)
		assert.Equal(suite.T(), 0.45, targets.CarbsPct)
		assert.Equal(suite.T(), 0.30, targets.FatsPct)
		assert.Equal(suite.T(), 125.0, targets.Protein) // 2000*0.25/4
		assert.Equal(suite.T(), 225.0, targets.Carbs)   // 2000*0.45/4
		assert.Equal(suite.T(), 67.0, targets.Fats)     // round(2000*0.30/9)
		assert.Equal(suite.T(), 2000.0, targets.Calories)
	})

	suite.Run("BuildMuscle_ShouldRaiseCarbsAndProtein", func() {
		targets, err := DeriveTargets(2400, GoalBuildMuscle, DietTypeOmnivore, false)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 0.30, targets.ProteinPct)
		assert.Equal(suite.T(), 0.45, targets.CarbsPct)
		assert.Equal(suite.T(), 0.25, targets.FatsPct)
	})

	suite.Run("KetoDiet_ShouldOverrideGoalSplit", func() {
		targets, err := DeriveTargets(2000, GoalBuildMuscle, DietTypeKeto, false)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 0.20, targets.ProteinPct)
		assert.Equal(suite.T(), 0.05, targets.CarbsPct)
		assert.Equal(suite.T(), 0.75, targets.FatsPct)
	})

	suite.Run("Diabetic_ShouldCapCarbsAndFloorProtein", func() {
		targets, err := DeriveTargets(2000, GoalMaintainWeight, DietTypeOmnivore, true)

		require.NoError(suite.T(), err)
		assert.LessOrEqual(suite.T(), targets.CarbsPct, 0.40)
		assert.GreaterOrEqual(suite.T(), targets.ProteinPct, 0.30)
		assert.InDelta(suite.T(), 1.0, targets.ProteinPct+targets.CarbsPct+targets.FatsPct, 1e-9)
	})

	suite.Run("DiabeticKeto_ShouldKeepCarbsLow", func() {
		// Keto carbs are already below the diabetic cap, so only the
		// protein floor applies
		targets, err := DeriveTargets(2000, GoalMaintainWeight, DietTypeKeto, true)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 0.05, targets.CarbsPct)
		assert.Equal(suite.T(), 0.30, targets.ProteinPct)
	})

	suite.Run("NonPositiveCalories_ShouldReturnError", func() {
		_, err := DeriveTargets(0, GoalMaintainWeight, DietTypeOmnivore, false)

		assert.ErrorIs(suite.T(), err, ErrInvalidCalorieTarget)
	})

	suite.Run("DerivedTargets_ShouldBeInternallyConsistent", func() {
		for _, goal := range []Goal{GoalLoseFat, GoalBuildMuscle, GoalMaintainWeight, GoalImproveWellbeing} {
			targets, err := DeriveTargets(2200, goal, DietTypeOmnivore, false)

			require.NoError(suite.T(), err)
			assert.NoError(suite.T(), targets.Validate(), "goal %s", goal)
		}
	})
}

// TestMacroTargetsValidate tests target consistency checks
func (suite *TargetsTestSuite) TestMacroTargetsValidate() {
	suite.Run("InconsistentCalories_ShouldReturnError", func() {
		targets := MacroTargets{
			Macros: Macros{Protein: 100, Carbs: 100, Fats: 100, Calories: 1000},
		}

		assert.ErrorIs(suite.T(), targets.Validate(), ErrInconsistentTargets)
	})

	suite.Run("NegativeMacros_ShouldReturnError", func() {
		targets := MacroTargets{
			Macros: Macros{Protein: -10, Carbs: 100, Fats: 50, Calories: 1000},
		}

		assert.ErrorIs(suite.T(), targets.Validate(), ErrNegativeMacros)
	})
}

func TestTargetsTestSuite(t *testing.T) {
	suite.Run(t, new(TargetsTestSuite))
}
