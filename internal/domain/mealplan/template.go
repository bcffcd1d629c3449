package mealplan

import "github.com/alchemorsel/mealplanner/internal/domain/nutrition"

// MealComponent references a catalog food at its reference portion
type MealComponent struct {
	FoodKey   string
	BaseGrams float64
}

// MealTemplate is a named, reusable combination of foods at reference
// portions, bound to exactly one (diet type, meal slot) bucket.
// Templates are immutable once defined in the catalog.
type MealTemplate struct {
	Name        string
	DietType    nutrition.DietType
	Slot        nutrition.MealSlot
	Components  []MealComponent
	Difficulty  nutrition.Difficulty
	PrepMinutes int
}

// Validate validates the template definition
func (t MealTemplate) Validate() error {
	if t.Name == "" {
		return ErrTemplateUnnamed
	}
	if len(t.Components) == 0 {
		return ErrTemplateEmpty
	}
	for _, c := range t.Components {
		if c.FoodKey == "" || c.BaseGrams <= 0 {
			return ErrInvalidComponent
		}
	}
	return nil
}
