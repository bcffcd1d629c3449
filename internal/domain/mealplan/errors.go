package mealplan

import "errors"

// Domain errors for meal-plan generation

var (
	// Profile validation errors
	ErrMissingUserID = errors.New("profile requires a user id")
	ErrTooFewMeals   = errors.New("a plan requires at least 2 meals per day")

	// Template validation errors
	ErrTemplateUnnamed  = errors.New("meal template requires a name")
	ErrTemplateEmpty    = errors.New("meal template requires at least one component")
	ErrInvalidComponent = errors.New("meal component requires a food key and positive base grams")

	// Preference validation errors
	ErrPreferenceValueRange      = errors.New("preference value must be between -1 and 1")
	ErrPreferenceConfidenceRange = errors.New("preference confidence must be between 0 and 1")
)
