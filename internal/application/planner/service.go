package planner

import (
	"context"
	stderrors "errors"
	"math"
	"time"

	"github.com/alchemorsel/mealplanner/internal/catalog"
	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
	"github.com/alchemorsel/mealplanner/internal/ports/inbound"
	"github.com/alchemorsel/mealplanner/internal/ports/outbound"
	"github.com/alchemorsel/mealplanner/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// logWriteTimeout bounds the detached generation-log write
const logWriteTimeout = 5 * time.Second

// PlannerService implements the meal-plan generation use cases
type PlannerService struct {
	foods     *catalog.FoodCatalog
	templates *catalog.TemplateCatalog
	prefRepo  outbound.PreferenceRepository
	logRepo   outbound.GenerationLogRepository
	cfg       Config
	logger    *zap.Logger
}

// NewPlannerService creates a new planner service
func NewPlannerService(
	foods *catalog.FoodCatalog,
	templates *catalog.TemplateCatalog,
	prefRepo outbound.PreferenceRepository,
	logRepo outbound.GenerationLogRepository,
	cfg Config,
	logger *zap.Logger,
) inbound.PlannerService {
	return &PlannerService{
		foods:     foods,
		templates: templates,
		prefRepo:  prefRepo,
		logRepo:   logRepo,
		cfg:       cfg,
		logger:    logger.Named("planner-service"),
	}
}

// generationContext carries the per-call state of one plan generation.
// It is created fresh for every GenerateMealPlan call; the service itself
// holds no mutable session state and is safe for concurrent use.
type generationContext struct {
	sessionID uuid.UUID
	prefs     []mealplan.UserPreference
	mappings  []mealplan.FoodHealthMapping

	// used tracks template names already picked this session; recent keeps
	// the pick order for the variety window
	used   map[string]bool
	recent []string

	logs []mealplan.GenerationLog
}

// GenerateMealPlan produces the ordered meals of one day for a user
func (s *PlannerService) GenerateMealPlan(ctx context.Context, cmd inbound.GeneratePlanCommand) ([]mealplan.Meal, error) {
	if err := cmd.Profile.Validate(); err != nil {
		return nil, errors.NewValidationError("invalid user profile").WithCause(err)
	}
	if err := cmd.Targets.Validate(); err != nil {
		return nil, errors.NewValidationError("invalid macro targets").WithCause(err)
	}

	s.logger.Info("Generating meal plan",
		zap.String("user_id", cmd.Profile.UserID.String()),
		zap.String("goal", string(cmd.Profile.Goal)),
		zap.String("diet", string(cmd.Profile.DietType)),
		zap.Int("meals_per_day", cmd.Profile.MealsPerDay),
	)

	gen := s.newGenerationContext(ctx, cmd.Profile)

	scorer := newTemplateScorer(s.cfg, s.foods, gen.prefs, gen.mappings, cmd.Profile.HealthConditions.Active())
	selector := &templateSelector{scorer: scorer, templates: s.templates}
	scaler := &portionScaler{cfg: s.cfg, foods: s.foods}

	slots, fractions := profileSlots(cmd.Profile)
	meals := make([]mealplan.Meal, 0, len(slots))

	for i, slot := range slots {
		slotTargets := cmd.Targets.ForRatio(fractions[i])

		selected, err := selector.pick(cmd.Profile.DietType, slot.Slot, slotTargets, gen.used, gen.recent)
		if err != nil {
			return nil, catalogError(err)
		}

		portion, err := scaler.scale(selected.Template, slotTargets)
		if err != nil {
			return nil, catalogError(err)
		}

		meal := mealplan.Meal{
			Name:             slot.Label + ": " + selected.Template.Name,
			Slot:             slot.Slot,
			Items:            portion.Items,
			Total:            portion.Total,
			Scores:           selected.Scores,
			GenerationReason: selected.Reason,
			TemplateName:     selected.Template.Name,
			Difficulty:       selected.Template.Difficulty,
			PrepMinutes:      selected.Template.PrepMinutes,
			ScaleFactor:      portion.Scale,
		}
		meals = append(meals, meal)

		if slotTargets.Calories > 0 {
			deviation := math.Abs(portion.Total.Calories-slotTargets.Calories) / slotTargets.Calories
			if deviation > s.cfg.MacroTolerance {
				s.logger.Debug("Meal calories outside tolerance",
					zap.String("meal", meal.Name),
					zap.Float64("target", slotTargets.Calories),
					zap.Float64("actual", portion.Total.Calories),
				)
			}
		}

		gen.used[selected.Template.Name] = true
		gen.recent = append(gen.recent, selected.Template.Name)
		gen.logs = append(gen.logs, mealplan.GenerationLog{
			SessionID:        gen.sessionID,
			UserID:           cmd.Profile.UserID,
			MealName:         meal.Name,
			TemplateName:     meal.TemplateName,
			Scores:           meal.Scores,
			Reason:           meal.GenerationReason,
			ScaleFactor:      meal.ScaleFactor,
			FinalMacros:      meal.Total,
			Goal:             cmd.Profile.Goal,
			DietType:         cmd.Profile.DietType,
			HealthConditions: cmd.Profile.HealthConditions,
			Restrictions:     cmd.Profile.DietaryRestrictions,
		})
	}

	s.saveLogs(gen.sessionID, cmd.Profile.UserID, gen.logs)

	s.logger.Info("Meal plan generated",
		zap.String("session_id", gen.sessionID.String()),
		zap.Int("meals", len(meals)),
	)

	return meals, nil
}

// DeriveMacroTargets computes daily macro targets from a profile and a
// calorie budget computed elsewhere
func (s *PlannerService) DeriveMacroTargets(profile mealplan.UserProfile, dailyCalories float64) (nutrition.MacroTargets, error) {
	if err := profile.Validate(); err != nil {
		return nutrition.MacroTargets{}, errors.NewValidationError("invalid user profile").WithCause(err)
	}
	return nutrition.DeriveTargets(dailyCalories, profile.Goal, profile.DietType, profile.HealthConditions.Diabetes)
}

// catalogError maps a missing-food lookup onto its engine error code.
// The catalogs are cross-validated at startup, so this only fires when a
// caller wires mismatched catalogs directly.
func catalogError(err error) error {
	var notFound *catalog.FoodNotFoundError
	if stderrors.As(err, &notFound) {
		return errors.NewFoodNotFoundError(notFound.FoodKey, err)
	}
	return err
}

// newGenerationContext loads the per-session collaborator data. Missing
// preference data degrades the scoring to its neutral defaults instead of
// failing the plan, so load errors are logged and swallowed here.
func (s *PlannerService) newGenerationContext(ctx context.Context, profile mealplan.UserProfile) *generationContext {
	gen := &generationContext{
		sessionID: uuid.New(),
		used:      make(map[string]bool),
	}

	prefs, err := s.prefRepo.FindByUserID(ctx, profile.UserID)
	if err != nil {
		s.logger.Warn("Failed to load user preferences, scoring without them",
			zap.String("user_id", profile.UserID.String()),
			zap.Error(err),
		)
	} else {
		gen.prefs = prefs
	}

	mappings, err := s.prefRepo.FindFoodHealthMappings(ctx)
	if err != nil {
		s.logger.Warn("Failed to load food-health mappings, scoring without them",
			zap.Error(err),
		)
	} else {
		gen.mappings = mappings
	}

	return gen
}

// saveLogs writes the session's generation logs in a detached goroutine.
// The write gets its own timeout and never blocks or fails the caller.
func (s *PlannerService) saveLogs(sessionID, userID uuid.UUID, logs []mealplan.GenerationLog) {
	if len(logs) == 0 {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), logWriteTimeout)
		defer cancel()

		if err := s.logRepo.SaveSession(ctx, sessionID, userID, logs); err != nil {
			s.logger.Error("Failed to save generation logs",
				zap.String("session_id", sessionID.String()),
				zap.Error(err),
			)
		}
	}()
}
