package planner

import (
	"testing"

	"github.com/alchemorsel/mealplanner/internal/catalog"
	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ScalingTestSuite provides a test suite for portion scaling
type ScalingTestSuite struct {
	suite.Suite
	scaler *portionScaler
}

// SetupSuite initializes the test suite
func (suite *ScalingTestSuite) SetupSuite() {
	suite.scaler = &portionScaler{
		cfg:   DefaultConfig(),
		foods: catalog.NewFoodCatalog(),
	}
}

// TestScale tests portion scaling scenarios
func (suite *ScalingTestSuite) TestScale() {
	tpl := testTemplate("Chicken & Rice Bowl",
		mealplan.MealComponent{FoodKey: "chickenBreast", BaseGrams: 150},
		mealplan.MealComponent{FoodKey: "brownRice", BaseGrams: 150},
	)

	suite.Run("DoubleCalorieTarget_ShouldRoughlyDoublePortions", func() {
		// Arrange
		base, err := suite.scaler.baseMacros(tpl)
		require.NoError(suite.T(), err)
		targets := nutrition.MacroTargets{Macros: base.Scale(2)}

		// Act
		portion, err := suite.scaler.scale(tpl, targets)

		// Assert
		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 2.0, portion.Scale, 1e-9)
		require.Len(suite.T(), portion.Items, 2)
		assert.Equal(suite.T(), 300.0, portion.Items[0].Grams)
		assert.InDelta(suite.T(), targets.Calories, portion.Total.Calories, targets.Calories*0.02)
	})

	suite.Run("MacroRichTarget_ShouldPreferNonNaiveScale", func() {
		// Arrange: macros sit at base×1.1 while calories match base, so
		// the calorie-exact scale is 1.0 but the macro optimum is 1.1
		base, err := suite.scaler.baseMacros(tpl)
		require.NoError(suite.T(), err)
		macros := base.Scale(1.1)
		macros.Calories = base.Calories
		targets := nutrition.MacroTargets{Macros: macros}

		// Act
		portion, err := suite.scaler.scale(tpl, targets)

		// Assert
		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 1.1, portion.Scale, 1e-9)
	})

	suite.Run("TinyTarget_ShouldClampAtScaleMin", func() {
		base, err := suite.scaler.baseMacros(tpl)
		require.NoError(suite.T(), err)
		targets := nutrition.MacroTargets{Macros: base.Scale(0.1)}

		portion, err := suite.scaler.scale(tpl, targets)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), DefaultConfig().ScaleMin, portion.Scale)
	})

	suite.Run("HugeTarget_ShouldClampAtScaleMax", func() {
		base, err := suite.scaler.baseMacros(tpl)
		require.NoError(suite.T(), err)
		targets := nutrition.MacroTargets{Macros: base.Scale(10)}

		portion, err := suite.scaler.scale(tpl, targets)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), DefaultConfig().ScaleMax, portion.Scale)
	})

	suite.Run("TotalsMatchRoundedPortions", func() {
		base, err := suite.scaler.baseMacros(tpl)
		require.NoError(suite.T(), err)
		targets := nutrition.MacroTargets{Macros: base.Scale(1.37)}

		portion, err := suite.scaler.scale(tpl, targets)
		require.NoError(suite.T(), err)

		// Totals must be recomputed from rounded grams, not scaled
		var expected nutrition.Macros
		for _, item := range portion.Items {
			expected = expected.Add(item.Macros)
		}
		assert.Equal(suite.T(), expected, portion.Total)
		for _, item := range portion.Items {
			assert.Equal(suite.T(), float64(int(item.Grams)), item.Grams, "grams must be whole")
		}
	})

	suite.Run("UnknownFood_ShouldFailLoudly", func() {
		broken := testTemplate("Mystery Meal",
			mealplan.MealComponent{FoodKey: "unobtainium", BaseGrams: 100},
		)

		_, err := suite.scaler.scale(broken, nutrition.MacroTargets{
			Macros: nutrition.Macros{Calories: 500},
		})

		var notFound *catalog.FoodNotFoundError
		assert.ErrorAs(suite.T(), err, &notFound)
	})
}

// TestMacroError tests the candidate selection metric
func (suite *ScalingTestSuite) TestMacroError() {
	targets := nutrition.MacroTargets{
		Macros: nutrition.Macros{Protein: 40, Carbs: 40, Fats: 15, Calories: 455},
	}

	exact := macroError(nutrition.Macros{Protein: 40, Carbs: 40, Fats: 15}, targets)
	off := macroError(nutrition.Macros{Protein: 20, Carbs: 40, Fats: 15}, targets)

	assert.Zero(suite.T(), exact)
	assert.Greater(suite.T(), off, exact)
}

func TestScalingTestSuite(t *testing.T) {
	suite.Run(t, new(ScalingTestSuite))
}
