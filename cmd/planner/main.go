// Package main provides a small demo entry point that generates one
// day's meal plan for a sample profile and prints it as JSON
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/infrastructure/container"
	"github.com/alchemorsel/mealplanner/internal/ports/inbound"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const demoDailyCalories = 2200

func main() {
	app := fx.New(
		fx.NopLogger, // Use our own logger instead of Fx's
		container.Module,
		fx.Invoke(runDemo),
	)

	app.Run()

	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runDemo generates one plan after startup, prints it and shuts the
// application down
func runDemo(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	service inbound.PlannerService,
	log *zap.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := generate(service); err != nil {
					log.Error("Demo plan generation failed", zap.Error(err))
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
	})
}

func generate(service inbound.PlannerService) error {
	profile := mealplan.ProfileFromQuiz(uuid.New(), mealplan.QuizAnswers{
		Age:             32,
		Gender:          "male",
		Weight:          82,
		Height:          180,
		GoalWeight:      78,
		ActivityLevel:   "moderately active",
		DietType:        "omnivore",
		Goal:            "build muscle",
		MealsPerDay:     "4 meals",
		HealthCondition: "none",
	})

	targets, err := service.DeriveMacroTargets(profile, demoDailyCalories)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	meals, err := service.GenerateMealPlan(ctx, inbound.GeneratePlanCommand{
		Profile: profile,
		Targets: targets,
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(meals, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	return nil
}
