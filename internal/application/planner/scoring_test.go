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

// ScoringTestSuite provides a test suite for template scoring
type ScoringTestSuite struct {
	suite.Suite
	foods *catalog.FoodCatalog
}

// SetupSuite initializes the test suite
func (suite *ScoringTestSuite) SetupSuite() {
	suite.foods = catalog.NewFoodCatalog()
}

func (suite *ScoringTestSuite) newScorer(
	prefs []mealplan.UserPreference,
	mappings []mealplan.FoodHealthMapping,
	conditions []nutrition.HealthCondition,
) *templateScorer {
	return newTemplateScorer(DefaultConfig(), suite.foods, prefs, mappings, conditions)
}

func testTemplate(name string, components ...mealplan.MealComponent) mealplan.MealTemplate {
	return mealplan.MealTemplate{
		Name:       name,
		DietType:   nutrition.DietTypeOmnivore,
		Slot:       nutrition.SlotLunch,
		Components: components,
		Difficulty: nutrition.DifficultyMedium,
	}
}

// TestMacroAlignment tests the macro alignment sub-score
func (suite *ScoringTestSuite) TestMacroAlignment() {
	suite.Run("PerfectFitAfterScaling_ShouldScoreOne", func() {
		// Arrange
		scorer := suite.newScorer(nil, nil, nil)
		tpl := testTemplate("Chicken & Rice Bowl",
			mealplan.MealComponent{FoodKey: "chickenBreast", BaseGrams: 150},
			mealplan.MealComponent{FoodKey: "brownRice", BaseGrams: 150},
		)
		base, err := scorer.templateMacros(tpl)
		require.NoError(suite.T(), err)

		// Targets are the template's own macros scaled by 1.5, so the
		// naive calorie scaling recovers them exactly
		targets := nutrition.MacroTargets{Macros: base.Scale(1.5)}

		// Act
		score, err := scorer.macroAlignmentScore(tpl, targets)

		// Assert
		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 1.0, score, 1e-9)
	})

	suite.Run("MismatchedMacros_ShouldScoreLower", func() {
		scorer := suite.newScorer(nil, nil, nil)
		proteinHeavy := testTemplate("Chicken Plate",
			mealplan.MealComponent{FoodKey: "chickenBreast", BaseGrams: 200},
		)
		carbHeavy := testTemplate("Rice Plate",
			mealplan.MealComponent{FoodKey: "whiteRice", BaseGrams: 200},
		)

		// Protein-dominant targets
		targets := nutrition.MacroTargets{
			Macros: nutrition.Macros{Protein: 50, Carbs: 10, Fats: 10, Calories: 330},
		}

		proteinScore, err := scorer.macroAlignmentScore(proteinHeavy, targets)
		require.NoError(suite.T(), err)
		carbScore, err := scorer.macroAlignmentScore(carbHeavy, targets)
		require.NoError(suite.T(), err)

		assert.Greater(suite.T(), proteinScore, carbScore)
	})

	suite.Run("UnknownFood_ShouldFailLoudly", func() {
		scorer := suite.newScorer(nil, nil, nil)
		tpl := testTemplate("Mystery Meal",
			mealplan.MealComponent{FoodKey: "unobtainium", BaseGrams: 100},
		)

		_, err := scorer.macroAlignmentScore(tpl, nutrition.MacroTargets{})

		var notFound *catalog.FoodNotFoundError
		assert.ErrorAs(suite.T(), err, &notFound)
	})
}

// TestHealthScoring tests exclusion and benefit ranking
func (suite *ScoringTestSuite) TestHealthScoring() {
	suite.Run("RestrictedFood_ShouldHardExcludeTemplate", func() {
		// White rice carries a diabetes restriction tag
		scorer := suite.newScorer(nil, nil, []nutrition.HealthCondition{nutrition.ConditionDiabetes})
		tpl := testTemplate("Rice Bowl",
			mealplan.MealComponent{FoodKey: "whiteRice", BaseGrams: 150},
		)

		ranked, err := scorer.rank(
			[]mealplan.MealTemplate{tpl},
			nutrition.MacroTargets{Macros: nutrition.Macros{Protein: 20, Carbs: 40, Fats: 10, Calories: 330}},
			map[string]bool{},
			nil,
			rankOptions{},
		)

		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), ranked)
	})

	suite.Run("BeneficialFood_ShouldOutscoreNeutralFood", func() {
		mappings := []mealplan.FoodHealthMapping{
			{FoodKey: "salmon", Condition: nutrition.ConditionHeartDisease, BenefitScore: 1},
		}
		scorer := suite.newScorer(nil, mappings, []nutrition.HealthCondition{nutrition.ConditionHeartDisease})

		beneficial := testTemplate("Salmon Plate",
			mealplan.MealComponent{FoodKey: "salmon", BaseGrams: 150},
		)
		neutral := testTemplate("Cod Plate",
			mealplan.MealComponent{FoodKey: "cod", BaseGrams: 150},
		)

		beneficialScore, err := scorer.healthConditionScore(beneficial)
		require.NoError(suite.T(), err)
		neutralScore, err := scorer.healthConditionScore(neutral)
		require.NoError(suite.T(), err)

		assert.InDelta(suite.T(), 0.6, beneficialScore, 1e-9) // 0.5 + 1*1*0.1
		assert.InDelta(suite.T(), 0.5, neutralScore, 1e-9)
	})

	suite.Run("SmallPortion_ShouldContributeLess", func() {
		mappings := []mealplan.FoodHealthMapping{
			{FoodKey: "salmon", Condition: nutrition.ConditionHeartDisease, BenefitScore: 1},
		}
		scorer := suite.newScorer(nil, mappings, []nutrition.HealthCondition{nutrition.ConditionHeartDisease})

		garnish := testTemplate("Salmon Garnish",
			mealplan.MealComponent{FoodKey: "salmon", BaseGrams: 30},
		)

		score, err := scorer.healthConditionScore(garnish)
		require.NoError(suite.T(), err)

		assert.InDelta(suite.T(), 0.53, score, 1e-9) // 0.5 + 1*0.3*0.1
	})
}

// TestVarietyScoring tests the variety sub-score
func (suite *ScoringTestSuite) TestVarietyScoring() {
	suite.Run("CookingMethodInName_ShouldEarnBonus", func() {
		scorer := suite.newScorer(nil, nil, nil)
		plain := testTemplate("Chicken Plate",
			mealplan.MealComponent{FoodKey: "chickenBreast", BaseGrams: 150},
		)
		grilled := testTemplate("Grilled Chicken Plate",
			mealplan.MealComponent{FoodKey: "chickenBreast", BaseGrams: 150},
		)

		plainScore, err := scorer.varietyScore(plain, nil)
		require.NoError(suite.T(), err)
		grilledScore, err := scorer.varietyScore(grilled, nil)
		require.NoError(suite.T(), err)

		assert.InDelta(suite.T(), 0.1, grilledScore-plainScore, 1e-9)
	})

	suite.Run("MoreCategories_ShouldScoreHigher", func() {
		scorer := suite.newScorer(nil, nil, nil)
		single := testTemplate("Chicken Plate",
			mealplan.MealComponent{FoodKey: "chickenBreast", BaseGrams: 150},
		)
		diverse := testTemplate("Chicken Veg Plate",
			mealplan.MealComponent{FoodKey: "chickenBreast", BaseGrams: 150},
			mealplan.MealComponent{FoodKey: "broccoli", BaseGrams: 100},
			mealplan.MealComponent{FoodKey: "oliveOil", BaseGrams: 10},
		)

		singleScore, err := scorer.varietyScore(single, nil)
		require.NoError(suite.T(), err)
		diverseScore, err := scorer.varietyScore(diverse, nil)
		require.NoError(suite.T(), err)

		assert.Greater(suite.T(), diverseScore, singleScore)
	})

	suite.Run("SimilarToRecentPick_ShouldBePenalized", func() {
		scorer := suite.newScorer(nil, nil, nil)
		tpl := testTemplate("Chicken Rice Bowl",
			mealplan.MealComponent{FoodKey: "chickenBreast", BaseGrams: 150},
		)

		fresh, err := scorer.varietyScore(tpl, nil)
		require.NoError(suite.T(), err)
		repeated, err := scorer.varietyScore(tpl, []string{"Chicken & Rice Bowl"})
		require.NoError(suite.T(), err)

		assert.InDelta(suite.T(), 0.1, fresh-repeated, 1e-9)
	})

	suite.Run("OldPicksBeyondWindow_ShouldNotCount", func() {
		scorer := suite.newScorer(nil, nil, nil)
		tpl := testTemplate("Chicken Rice Bowl",
			mealplan.MealComponent{FoodKey: "chickenBreast", BaseGrams: 150},
		)

		recent := []string{"Chicken & Rice Bowl", "Salmon Plate", "Oat Bowl", "Egg Plate"}
		score, err := scorer.varietyScore(tpl, recent)
		require.NoError(suite.T(), err)

		fresh, err := scorer.varietyScore(tpl, nil)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), fresh, score)
	})
}

// TestPreferenceScoring tests the user preference sub-score
func (suite *ScoringTestSuite) TestPreferenceScoring() {
	suite.Run("StrongRestriction_ShouldVetoTemplate", func() {
		prefs := []mealplan.UserPreference{
			{Type: mealplan.PreferenceFoodRestrictions, Key: "peanuts", Value: -1, Confidence: 1},
		}
		scorer := suite.newScorer(prefs, nil, nil)
		tpl := testTemplate("Peanut Snack",
			mealplan.MealComponent{FoodKey: "peanuts", BaseGrams: 50},
			mealplan.MealComponent{FoodKey: "banana", BaseGrams: 100},
		)

		assert.Equal(suite.T(), 0.1, scorer.userPreferenceScore(tpl))
	})

	suite.Run("MildRestriction_ShouldNotVeto", func() {
		prefs := []mealplan.UserPreference{
			{Type: mealplan.PreferenceFoodRestrictions, Key: "peanuts", Value: -0.3, Confidence: 1},
		}
		scorer := suite.newScorer(prefs, nil, nil)
		tpl := testTemplate("Peanut Snack",
			mealplan.MealComponent{FoodKey: "peanuts", BaseGrams: 50},
		)

		assert.Greater(suite.T(), scorer.userPreferenceScore(tpl), 0.1)
	})

	suite.Run("LikedFood_ShouldRaiseScore", func() {
		prefs := []mealplan.UserPreference{
			{Type: mealplan.PreferenceFoodLikes, Key: "chickenBreast", Value: 1, Confidence: 1},
		}
		scorer := suite.newScorer(prefs, nil, nil)
		tpl := testTemplate("Chicken Plate",
			mealplan.MealComponent{FoodKey: "chickenBreast", BaseGrams: 150},
		)

		assert.InDelta(suite.T(), 0.7, scorer.userPreferenceScore(tpl), 1e-9) // 0.5 + 1*1*1*0.2
	})

	suite.Run("LikedTemplateAndCookingStyle_ShouldStack", func() {
		prefs := []mealplan.UserPreference{
			{Type: mealplan.PreferenceTemplateLikes, Key: "Chicken Plate", Value: 1, Confidence: 1},
			{Type: mealplan.PreferenceCookingStyle, Key: "medium", Value: 1, Confidence: 1},
		}
		scorer := suite.newScorer(prefs, nil, nil)
		tpl := testTemplate("Chicken Plate",
			mealplan.MealComponent{FoodKey: "chickenBreast", BaseGrams: 150},
		)

		assert.InDelta(suite.T(), 0.9, scorer.userPreferenceScore(tpl), 1e-9) // 0.5 + 0.3 + 0.1
	})
}

// TestRanking tests filtering, ordering and determinism
func (suite *ScoringTestSuite) TestRanking() {
	targets := nutrition.MacroTargets{
		Macros: nutrition.Macros{Protein: 40, Carbs: 60, Fats: 20, Calories: 580},
	}

	suite.Run("RankedList_ShouldBeSortedByTotal", func() {
		scorer := suite.newScorer(nil, nil, nil)
		templates := catalog.NewTemplateCatalog().Bucket(nutrition.DietTypeOmnivore, nutrition.SlotLunch)

		ranked, err := scorer.rank(templates, targets, map[string]bool{}, nil, rankOptions{})
		require.NoError(suite.T(), err)
		require.NotEmpty(suite.T(), ranked)

		for i := 1; i < len(ranked); i++ {
			assert.GreaterOrEqual(suite.T(), ranked[i-1].Scores.Total, ranked[i].Scores.Total)
		}
		for _, st := range ranked {
			assert.GreaterOrEqual(suite.T(), st.Scores.Total, DefaultConfig().MinTemplateScore)
		}
	})

	suite.Run("SameInputs_ShouldRankIdentically", func() {
		scorer := suite.newScorer(nil, nil, nil)
		templates := catalog.NewTemplateCatalog().Bucket(nutrition.DietTypeOmnivore, nutrition.SlotLunch)

		first, err := scorer.rank(templates, targets, map[string]bool{}, nil, rankOptions{})
		require.NoError(suite.T(), err)
		second, err := scorer.rank(templates, targets, map[string]bool{}, nil, rankOptions{})
		require.NoError(suite.T(), err)

		assert.Equal(suite.T(), first, second)
	})

	suite.Run("UsedTemplates_ShouldBeSkipped", func() {
		scorer := suite.newScorer(nil, nil, nil)
		templates := catalog.NewTemplateCatalog().Bucket(nutrition.DietTypeOmnivore, nutrition.SlotLunch)

		all, err := scorer.rank(templates, targets, map[string]bool{}, nil, rankOptions{})
		require.NoError(suite.T(), err)
		require.NotEmpty(suite.T(), all)

		used := map[string]bool{all[0].Template.Name: true}
		remaining, err := scorer.rank(templates, targets, used, nil, rankOptions{})
		require.NoError(suite.T(), err)

		for _, st := range remaining {
			assert.NotEqual(suite.T(), all[0].Template.Name, st.Template.Name)
		}
	})

	suite.Run("MaxTemplates_ShouldCapTheList", func() {
		cfg := DefaultConfig()
		cfg.MaxTemplates = 1
		cfg.MinTemplateScore = 0
		scorer := newTemplateScorer(cfg, suite.foods, nil, nil, nil)
		templates := catalog.NewTemplateCatalog().Bucket(nutrition.DietTypeOmnivore, nutrition.SlotLunch)

		ranked, err := scorer.rank(templates, targets, map[string]bool{}, nil, rankOptions{})
		require.NoError(suite.T(), err)

		assert.Len(suite.T(), ranked, 1)
	})
}

// TestSelectionReason tests reason summarization
func (suite *ScoringTestSuite) TestSelectionReason() {
	suite.Run("HighScores_ShouldBeNamed", func() {
		reason := selectionReason(mealplan.ScoreBreakdown{
			MacroAlignment:  0.9,
			HealthCondition: 0.8,
			Variety:         0.5,
			UserPreference:  0.5,
		})

		assert.Contains(suite.T(), reason, "excellent macro alignment")
		assert.Contains(suite.T(), reason, "beneficial for health conditions")
		assert.NotContains(suite.T(), reason, "variety")
	})

	suite.Run("NoStandoutScores_ShouldFallBackToGeneric", func() {
		reason := selectionReason(mealplan.ScoreBreakdown{
			MacroAlignment:  0.5,
			HealthCondition: 0.5,
			Variety:         0.5,
			UserPreference:  0.5,
		})

		assert.Equal(suite.T(), "Selected as best available option", reason)
	})
}

func TestScoringTestSuite(t *testing.T) {
	suite.Run(t, new(ScoringTestSuite))
}
