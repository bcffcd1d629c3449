package mealplan

import "github.com/alchemorsel/mealplanner/internal/domain/nutrition"

// MealItem is one scaled food row in a generated meal
type MealItem struct {
	FoodName string           `json:"food"`
	Grams    float64          `json:"grams"`
	Macros   nutrition.Macros `json:"macros"`
}

// ScoreBreakdown carries the sub-scores that selected a template.
// All values lie in [0,1].
type ScoreBreakdown struct {
	MacroAlignment  float64 `json:"macroAlignmentScore"`
	HealthCondition float64 `json:"healthConditionScore"`
	Variety         float64 `json:"varietyScore"`
	UserPreference  float64 `json:"userPreferenceScore"`
	Total           float64 `json:"totalScore"`
}

// Meal is one generated meal in a plan
type Meal struct {
	Name  string            `json:"name"`
	Slot  nutrition.MealSlot `json:"slot"`
	Items []MealItem        `json:"items"`
	Total nutrition.Macros  `json:"total"`

	Scores           ScoreBreakdown       `json:"scores"`
	GenerationReason string               `json:"generationReason"`
	TemplateName     string               `json:"templateName"`
	Difficulty       nutrition.Difficulty `json:"difficulty,omitempty"`
	PrepMinutes      int                  `json:"prepTime,omitempty"`
	ScaleFactor      float64              `json:"scaleFactor"`
}
