// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"

	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/google/uuid"
)

// PreferenceRepository reads historical preference signals and food-health
// mappings. Both are consumed read-only by the engine, once per plan.
type PreferenceRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]mealplan.UserPreference, error)
	FindFoodHealthMappings(ctx context.Context) ([]mealplan.FoodHealthMapping, error)
}

// GenerationLogRepository records selection decisions after generation.
// Writes are best-effort; a failed write must never fail the plan.
type GenerationLogRepository interface {
	SaveSession(ctx context.Context, sessionID, userID uuid.UUID, logs []mealplan.GenerationLog) error
}
