// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
)

// PlannerService defines the use cases for meal-plan generation.
// This is the primary port that the surrounding service layer drives.
type PlannerService interface {
	// GenerateMealPlan produces the ordered meals of one day for a user
	GenerateMealPlan(ctx context.Context, cmd GeneratePlanCommand) ([]mealplan.Meal, error)

	// DeriveMacroTargets computes daily macro targets from a profile and
	// a calorie budget computed elsewhere
	DeriveMacroTargets(profile mealplan.UserProfile, dailyCalories float64) (nutrition.MacroTargets, error)
}

// GeneratePlanCommand contains the inputs of one plan generation
type GeneratePlanCommand struct {
	Profile mealplan.UserProfile
	Targets nutrition.MacroTargets
}
