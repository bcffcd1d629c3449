// Package mealplan contains the domain model for personalized meal-plan
// generation: user profiles, meal templates, generated meals, preference
// signals and generation logs.
package mealplan

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const defaultMealsPerDay = 3

// HealthConditions is a sparse record of medical conditions; only true
// fields participate in filtering and scoring.
type HealthConditions struct {
	Diabetes          bool   `json:"diabetes,omitempty"`
	HighBloodPressure bool   `json:"highBloodPressure,omitempty"`
	HeartDisease      bool   `json:"heartDisease,omitempty"`
	Thyroid           bool   `json:"thyroid,omitempty"`
	Other             string `json:"other,omitempty"`
}

// Active returns the set of active conditions
func (h HealthConditions) Active() []nutrition.HealthCondition {
	var active []nutrition.HealthCondition
	if h.Diabetes {
		active = append(active, nutrition.ConditionDiabetes)
	}
	if h.HighBloodPressure {
		active = append(active, nutrition.ConditionHighBloodPressure)
	}
	if h.HeartDisease {
		active = append(active, nutrition.ConditionHeartDisease)
	}
	if h.Thyroid {
		active = append(active, nutrition.ConditionThyroid)
	}
	return active
}

// UserProfile is the nutritional profile a plan is generated against.
// It is supplied fresh per request and never mutated by the engine.
type UserProfile struct {
	UserID      uuid.UUID `validate:"required"`
	Age         int       `validate:"gte=0,lte=130"`
	Gender      string
	Weight      float64 `validate:"gte=0"`
	Height      float64 `validate:"gte=0"`
	GoalWeight  float64 `validate:"gte=0"`
	Activity    nutrition.ActivityLevel
	DietType    nutrition.DietType
	Goal        nutrition.Goal
	MealsPerDay int `validate:"gte=2,lte=8"`

	HealthConditions    HealthConditions
	DietaryRestrictions []string
	ExerciseTime        string
	ExerciseType        string
}

// Validate validates the profile for plan generation
func (p UserProfile) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if p.MealsPerDay < 2 {
		return ErrTooFewMeals
	}
	return validator.New().Struct(p)
}

// QuizAnswers carries the raw free-text answers collected by the legacy
// onboarding quiz, keyed by question number.
type QuizAnswers struct {
	Age             int
	Gender          string
	Weight          float64
	Height          float64
	GoalWeight      float64
	ActivityLevel   string
	DietType        string
	Goal            string
	MealsPerDay     string
	HealthCondition string
	ExerciseTime    string
	ExerciseType    string
}

var leadingNumber = regexp.MustCompile(`^(\d+)`)

// ProfileFromQuiz normalizes legacy quiz answers into a UserProfile.
// All free-text interpretation happens here; the rest of the engine only
// sees the closed enum types.
func ProfileFromQuiz(userID uuid.UUID, answers QuizAnswers) UserProfile {
	diet := nutrition.NormalizeDietType(answers.DietType)

	profile := UserProfile{
		UserID:              userID,
		Age:                 answers.Age,
		Gender:              answers.Gender,
		Weight:              answers.Weight,
		Height:              answers.Height,
		GoalWeight:          answers.GoalWeight,
		Activity:            nutrition.NormalizeActivityLevel(answers.ActivityLevel),
		DietType:            diet,
		Goal:                nutrition.NormalizeGoal(answers.Goal),
		MealsPerDay:         parseMealsPerDay(answers.MealsPerDay),
		HealthConditions:    parseHealthConditions(answers.HealthCondition),
		DietaryRestrictions: restrictionsForDiet(answers.DietType),
		ExerciseTime:        answers.ExerciseTime,
		ExerciseType:        answers.ExerciseType,
	}

	return profile
}

// parseMealsPerDay accepts answers like "3", "4 meals" or "5+"
func parseMealsPerDay(raw string) int {
	match := leadingNumber.FindString(raw)
	if match == "" {
		return defaultMealsPerDay
	}
	n, err := strconv.Atoi(match)
	if err != nil || n <= 0 {
		return defaultMealsPerDay
	}
	return n
}

func parseHealthConditions(raw string) HealthConditions {
	var conditions HealthConditions
	switch nutrition.NormalizeHealthCondition(raw) {
	case nutrition.ConditionDiabetes:
		conditions.Diabetes = true
	case nutrition.ConditionHighBloodPressure:
		conditions.HighBloodPressure = true
	case nutrition.ConditionHeartDisease:
		conditions.HeartDisease = true
	case nutrition.ConditionThyroid:
		conditions.Thyroid = true
	default:
		if raw != "" && !strings.EqualFold(raw, "none") {
			conditions.Other = raw
		}
	}
	return conditions
}

// restrictionsForDiet derives the forbidden food groups implied by a
// legacy diet answer. Gluten-free and lactose intolerance arrive through
// the diet question even though they are not DietType values.
func restrictionsForDiet(rawDiet string) []string {
	switch rawDiet {
	case "Vegetarian":
		return []string{"meat"}
	case "Vegan":
		return []string{"meat", "dairy", "eggs"}
	case "Keto":
		return []string{"high_carb"}
	case "Gluten-free":
		return []string{"gluten"}
	case "Lactose intolerant":
		return []string{"lactose"}
	default:
		return nil
	}
}
