package postgres

import (
	"context"

	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
	"github.com/alchemorsel/mealplanner/internal/ports/outbound"
	"github.com/alchemorsel/mealplanner/pkg/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PreferenceRepository implements the preference repository interface
// over the user_preferences and food_health_mappings tables
type PreferenceRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewPreferenceRepository creates a new postgres preference repository
func NewPreferenceRepository(db *pgxpool.Pool, logger *zap.Logger) outbound.PreferenceRepository {
	return &PreferenceRepository{
		db:     db,
		logger: logger,
	}
}

// FindByUserID retrieves the preference signals of a user
func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]mealplan.UserPreference, error) {
	query := `SELECT preference_type, preference_key, preference_value, confidence
		FROM user_preferences
		WHERE user_id = $1`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to query user preferences",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return nil, errors.NewPreferenceLoadError(err)
	}
	defer rows.Close()

	var prefs []mealplan.UserPreference
	for rows.Next() {
		var p mealplan.UserPreference
		var prefType string
		if err := rows.Scan(&prefType, &p.Key, &p.Value, &p.Confidence); err != nil {
			return nil, errors.NewPreferenceLoadError(err)
		}
		p.Type = mealplan.PreferenceType(prefType)
		prefs = append(prefs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewPreferenceLoadError(err)
	}

	return prefs, nil
}

// FindFoodHealthMappings retrieves all food-to-condition benefit scores
func (r *PreferenceRepository) FindFoodHealthMappings(ctx context.Context) ([]mealplan.FoodHealthMapping, error) {
	query := `SELECT food_key, health_condition, benefit_score
		FROM food_health_mappings`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query food health mappings", zap.Error(err))
		return nil, errors.NewHealthMappingLoadError(err)
	}
	defer rows.Close()

	var mappings []mealplan.FoodHealthMapping
	for rows.Next() {
		var m mealplan.FoodHealthMapping
		var condition string
		if err := rows.Scan(&m.FoodKey, &condition, &m.BenefitScore); err != nil {
			return nil, errors.NewHealthMappingLoadError(err)
		}
		m.Condition = nutrition.HealthCondition(condition)
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewHealthMappingLoadError(err)
	}

	return mappings, nil
}
