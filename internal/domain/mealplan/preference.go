package mealplan

import "github.com/alchemorsel/mealplanner/internal/domain/nutrition"

// PreferenceType classifies a historical preference signal
type PreferenceType string

const (
	PreferenceFoodLikes        PreferenceType = "food_likes"
	PreferenceFoodRestrictions PreferenceType = "food_restrictions"
	PreferenceTemplateLikes    PreferenceType = "template_likes"
	PreferenceCookingStyle     PreferenceType = "cooking_style"
)

// UserPreference is one historical preference signal for a user.
// Value ranges over [-1,1], Confidence over [0,1]. Preferences are
// sourced from an external store and read-only to the engine.
type UserPreference struct {
	Type       PreferenceType
	Key        string
	Value      float64
	Confidence float64
}

// Validate validates the preference row
func (p UserPreference) Validate() error {
	if p.Value < -1 || p.Value > 1 {
		return ErrPreferenceValueRange
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		return ErrPreferenceConfidenceRange
	}
	return nil
}

// FoodHealthMapping describes how strongly a food helps or hurts a
// health condition. BenefitScore ranges over [-1,1]. Read-only, sourced
// externally.
type FoodHealthMapping struct {
	FoodKey      string
	Condition    nutrition.HealthCondition
	BenefitScore float64
}
