// Package integration provides integration tests using real database instances
//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
	"github.com/alchemorsel/mealplanner/internal/infrastructure/persistence/postgres"
	"github.com/alchemorsel/mealplanner/internal/ports/outbound"
	"github.com/alchemorsel/mealplanner/test/testutils"
)

// PlannerRepositoryIntegrationTestSuite exercises the postgres
// preference and generation-log repositories against a real database.
type PlannerRepositoryIntegrationTestSuite struct {
	suite.Suite
	testDB      *testutils.TestDatabase
	preferences outbound.PreferenceRepository
	logs        outbound.GenerationLogRepository
	factory     *testutils.PreferenceFactory
	ctx         context.Context
}

// SetupSuite initializes the test suite with a real database
func (suite *PlannerRepositoryIntegrationTestSuite) SetupSuite() {
	suite.ctx = context.Background()

	suite.testDB = testutils.SetupTestDatabase(suite.T())

	err := suite.testDB.RunMigrations()
	require.NoError(suite.T(), err, "Failed to run migrations")

	log := zap.NewNop()
	suite.preferences = postgres.NewPreferenceRepository(suite.testDB.PgxPool, log)
	suite.logs = postgres.NewGenerationLogRepository(suite.testDB.PgxPool, log)
	suite.factory = testutils.NewPreferenceFactory(42)
}

// SetupTest resets table state before each test
func (suite *PlannerRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.testDB.TruncateTables(suite.ctx,
		"user_preferences", "food_health_mappings", "meal_generation_logs")
	require.NoError(suite.T(), err)
}

func (suite *PlannerRepositoryIntegrationTestSuite) insertPreference(userID uuid.UUID, p mealplan.UserPreference) {
	_, err := suite.testDB.PgxPool.Exec(suite.ctx,
		`INSERT INTO user_preferences (user_id, preference_type, preference_key, preference_value, confidence)
		 VALUES ($1, $2, $3, $4, $5)`,
		userID, string(p.Type), p.Key, p.Value, p.Confidence)
	require.NoError(suite.T(), err)
}

func (suite *PlannerRepositoryIntegrationTestSuite) insertMapping(m mealplan.FoodHealthMapping) {
	_, err := suite.testDB.PgxPool.Exec(suite.ctx,
		`INSERT INTO food_health_mappings (food_key, health_condition, benefit_score)
		 VALUES ($1, $2, $3)`,
		m.FoodKey, string(m.Condition), m.BenefitScore)
	require.NoError(suite.T(), err)
}

func (suite *PlannerRepositoryIntegrationTestSuite) TestFindByUserID() {
	suite.Run("StoredPreferences_ShouldRoundTrip", func() {
		// Arrange
		userID := uuid.New()
		liked := suite.factory.FoodLike("salmon")
		veto := suite.factory.FoodVeto("peanuts")
		suite.insertPreference(userID, liked)
		suite.insertPreference(userID, veto)

		// Act
		prefs, err := suite.preferences.FindByUserID(suite.ctx, userID)

		// Assert
		require.NoError(suite.T(), err)
		require.Len(suite.T(), prefs, 2)

		byKey := make(map[string]mealplan.UserPreference, len(prefs))
		for _, p := range prefs {
			byKey[p.Key] = p
		}
		assert.Equal(suite.T(), liked.Value, byKey["salmon"].Value)
		assert.Equal(suite.T(), mealplan.PreferenceFoodRestrictions, byKey["peanuts"].Type)
	})

	suite.Run("UnknownUser_ShouldReturnEmpty", func() {
		// Act
		prefs, err := suite.preferences.FindByUserID(suite.ctx, uuid.New())

		// Assert
		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), prefs)
	})
}

func (suite *PlannerRepositoryIntegrationTestSuite) TestFindFoodHealthMappings() {
	suite.Run("StoredMappings_ShouldRoundTrip", func() {
		// Arrange
		suite.insertMapping(suite.factory.Mapping("salmon", nutrition.ConditionHeartDisease, 0.8))
		suite.insertMapping(suite.factory.Mapping("oats", nutrition.ConditionDiabetes, 0.6))

		// Act
		mappings, err := suite.preferences.FindFoodHealthMappings(suite.ctx)

		// Assert
		require.NoError(suite.T(), err)
		require.Len(suite.T(), mappings, 2)

		byFood := make(map[string]mealplan.FoodHealthMapping, len(mappings))
		for _, m := range mappings {
			byFood[m.FoodKey] = m
		}
		assert.Equal(suite.T(), nutrition.ConditionHeartDisease, byFood["salmon"].Condition)
		assert.InDelta(suite.T(), 0.6, byFood["oats"].BenefitScore, 0.0001)
	})
}

func (suite *PlannerRepositoryIntegrationTestSuite) TestSaveSession() {
	suite.Run("SessionLogs_ShouldPersistAllRows", func() {
		// Arrange
		sessionID := uuid.New()
		userID := uuid.New()
		logs := []mealplan.GenerationLog{
			{
				SessionID:    sessionID,
				UserID:       userID,
				MealName:     "Lunch: Grilled Chicken Plate",
				TemplateName: "Grilled Chicken Plate",
				Scores: mealplan.ScoreBreakdown{
					MacroAlignment:  0.82,
					HealthCondition: 0.5,
					Variety:         0.6,
					UserPreference:  0.5,
					Total:           0.63,
				},
				Reason:      "Selected for excellent macro alignment",
				ScaleFactor: 1.1,
				FinalMacros: nutrition.Macros{Protein: 45, Carbs: 50, Fats: 14, Calories: 506},
				Goal:        nutrition.GoalBuildMuscle,
				DietType:    nutrition.DietTypeOmnivore,
				HealthConditions: mealplan.HealthConditions{
					Diabetes: true,
				},
				Restrictions: []string{"shellfish"},
			},
			{
				SessionID:    sessionID,
				UserID:       userID,
				MealName:     "Dinner: Baked Salmon Bowl",
				TemplateName: "Baked Salmon Bowl",
				Scores: mealplan.ScoreBreakdown{
					MacroAlignment:  0.7,
					HealthCondition: 0.6,
					Variety:         0.7,
					UserPreference:  0.5,
					Total:           0.62,
				},
				Reason:      "Selected as beneficial for health conditions",
				ScaleFactor: 0.9,
				FinalMacros: nutrition.Macros{Protein: 38, Carbs: 42, Fats: 18, Calories: 482},
				Goal:        nutrition.GoalBuildMuscle,
				DietType:    nutrition.DietTypeOmnivore,
			},
		}

		// Act
		err := suite.logs.SaveSession(suite.ctx, sessionID, userID, logs)

		// Assert
		require.NoError(suite.T(), err)

		var count int
		err = suite.testDB.PgxPool.QueryRow(suite.ctx,
			`SELECT COUNT(*) FROM meal_generation_logs WHERE session_id = $1`, sessionID).Scan(&count)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 2, count)

		var templateName, reason string
		var totalScore, scaleFactor float64
		var conditions []string
		err = suite.testDB.PgxPool.QueryRow(suite.ctx,
			`SELECT template_name, generation_reason, total_score, scale_factor, health_conditions
			 FROM meal_generation_logs
			 WHERE session_id = $1 AND meal_name = $2`,
			sessionID, "Lunch: Grilled Chicken Plate").
			Scan(&templateName, &reason, &totalScore, &scaleFactor, &conditions)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Grilled Chicken Plate", templateName)
		assert.Equal(suite.T(), "Selected for excellent macro alignment", reason)
		assert.InDelta(suite.T(), 0.63, totalScore, 0.0001)
		assert.InDelta(suite.T(), 1.1, scaleFactor, 0.0001)
		assert.Equal(suite.T(), []string{"diabetes"}, conditions)
	})

	suite.Run("EmptySession_ShouldBeNoOp", func() {
		// Act
		err := suite.logs.SaveSession(suite.ctx, uuid.New(), uuid.New(), nil)

		// Assert
		require.NoError(suite.T(), err)

		var count int
		err = suite.testDB.PgxPool.QueryRow(suite.ctx,
			`SELECT COUNT(*) FROM meal_generation_logs`).Scan(&count)
		require.NoError(suite.T(), err)
		assert.Zero(suite.T(), count)
	})
}

func TestPlannerRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(PlannerRepositoryIntegrationTestSuite))
}
