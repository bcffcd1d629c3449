package postgres

import (
	"context"

	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/ports/outbound"
	"github.com/alchemorsel/mealplanner/pkg/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// GenerationLogRepository implements the generation-log repository over
// the meal_generation_logs table
type GenerationLogRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewGenerationLogRepository creates a new postgres log repository
func NewGenerationLogRepository(db *pgxpool.Pool, logger *zap.Logger) outbound.GenerationLogRepository {
	return &GenerationLogRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSession batch-inserts the log rows of one generation session
func (r *GenerationLogRepository) SaveSession(ctx context.Context, sessionID, userID uuid.UUID, logs []mealplan.GenerationLog) error {
	if len(logs) == 0 {
		return nil
	}

	query := `INSERT INTO meal_generation_logs (
			session_id, user_id, meal_name, template_name,
			macro_alignment_score, health_condition_score, variety_score,
			user_preference_score, total_score, generation_reason,
			scale_factor, final_protein, final_carbs, final_fats,
			final_calories, goal, diet_type, health_conditions, restrictions
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		)`

	batch := &pgx.Batch{}
	for _, log := range logs {
		batch.Queue(query,
			sessionID,
			userID,
			log.MealName,
			log.TemplateName,
			log.Scores.MacroAlignment,
			log.Scores.HealthCondition,
			log.Scores.Variety,
			log.Scores.UserPreference,
			log.Scores.Total,
			log.Reason,
			log.ScaleFactor,
			log.FinalMacros.Protein,
			log.FinalMacros.Carbs,
			log.FinalMacros.Fats,
			log.FinalMacros.Calories,
			string(log.Goal),
			string(log.DietType),
			conditionNames(log.HealthConditions),
			log.Restrictions,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range logs {
		if _, err := results.Exec(); err != nil {
			r.logger.Error("Failed to insert generation log",
				zap.String("session_id", sessionID.String()),
				zap.Error(err),
			)
			return errors.NewLogWriteError(err)
		}
	}

	return nil
}

func conditionNames(conditions mealplan.HealthConditions) []string {
	active := conditions.Active()
	names := make([]string, 0, len(active))
	for _, c := range active {
		names = append(names, string(c))
	}
	return names
}
