// Package nutrition contains the core nutritional domain model.
// This follows Domain-Driven Design principles with rich domain models.
package nutrition

import "math"

// Caloric density constants in kcal per gram
const (
	CaloriesPerGramProtein = 4.0
	CaloriesPerGramCarbs   = 4.0
	CaloriesPerGramFats    = 9.0
)

// macroTargetsTolerance is the accepted rounding drift between the stated
// calorie total and the calories implied by the macro grams.
const macroTargetsTolerance = 0.05

// Macros represents an amount of protein, carbohydrates and fats
// together with the calories they provide.
type Macros struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Calories float64 `json:"calories"`
}

// Add returns the sum of two macro amounts
func (m Macros) Add(other Macros) Macros {
	return Macros{
		Protein:  m.Protein + other.Protein,
		Carbs:    m.Carbs + other.Carbs,
		Fats:     m.Fats + other.Fats,
		Calories: m.Calories + other.Calories,
	}
}

// Scale returns the macros multiplied by a scale factor
func (m Macros) Scale(factor float64) Macros {
	return Macros{
		Protein:  m.Protein * factor,
		Carbs:    m.Carbs * factor,
		Fats:     m.Fats * factor,
		Calories: m.Calories * factor,
	}
}

// ImpliedCalories computes the calories implied by the macro grams
func (m Macros) ImpliedCalories() float64 {
	return m.Protein*CaloriesPerGramProtein +
		m.Carbs*CaloriesPerGramCarbs +
		m.Fats*CaloriesPerGramFats
}

// MacroTargets describes a calorie and macro budget together with the
// percentage split that produced it.
type MacroTargets struct {
	Macros

	ProteinPct float64 `json:"proteinPercentage"`
	CarbsPct   float64 `json:"carbsPercentage"`
	FatsPct    float64 `json:"fatsPercentage"`
}

// Validate verifies the internal consistency of the targets.
// The stated calorie total must match the calories implied by the macro
// grams within rounding tolerance (protein 4, carbs 4, fats 9 kcal/g).
func (t MacroTargets) Validate() error {
	if t.Calories <= 0 {
		return ErrInvalidCalorieTarget
	}
	if t.Protein < 0 || t.Carbs < 0 || t.Fats < 0 {
		return ErrNegativeMacros
	}

	implied := t.ImpliedCalories()
	if math.Abs(implied-t.Calories) > t.Calories*macroTargetsTolerance {
		return ErrInconsistentTargets
	}

	return nil
}

// ForRatio derives the targets for a single meal occupying the given
// fraction of the daily budget. The percentage split is preserved.
func (t MacroTargets) ForRatio(ratio float64) MacroTargets {
	return MacroTargets{
		Macros:     t.Macros.Scale(ratio),
		ProteinPct: t.ProteinPct,
		CarbsPct:   t.CarbsPct,
		FatsPct:    t.FatsPct,
	}
}
