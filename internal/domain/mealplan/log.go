package mealplan

import (
	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
	"github.com/google/uuid"
)

// GenerationLog records one selection decision for later analysis.
// One row is produced per generated meal, keyed by the plan's session id.
type GenerationLog struct {
	SessionID    uuid.UUID
	UserID       uuid.UUID
	MealName     string
	TemplateName string

	Scores       ScoreBreakdown
	Reason       string
	ScaleFactor  float64
	FinalMacros  nutrition.Macros

	// Profile context captured at generation time
	Goal             nutrition.Goal
	DietType         nutrition.DietType
	HealthConditions HealthConditions
	Restrictions     []string
}
