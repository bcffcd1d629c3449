// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// ProfileBuilder provides a fluent interface for building test profiles
type ProfileBuilder struct {
	profile mealplan.UserProfile
}

// NewProfileBuilder creates a new profile builder with sensible defaults.
// The faker is seeded so repeated builds stay deterministic.
func NewProfileBuilder() *ProfileBuilder {
	faker := gofakeit.New(42)

	return &ProfileBuilder{
		profile: mealplan.UserProfile{
			UserID:      uuid.New(),
			Age:         faker.Number(20, 60),
			Gender:      faker.Gender(),
			Weight:      float64(faker.Number(55, 100)),
			Height:      float64(faker.Number(155, 195)),
			GoalWeight:  float64(faker.Number(55, 95)),
			Activity:    nutrition.ActivityModeratelyActive,
			DietType:    nutrition.DietTypeOmnivore,
			Goal:        nutrition.GoalMaintainWeight,
			MealsPerDay: 3,
		},
	}
}

// WithUserID sets the user id
func (b *ProfileBuilder) WithUserID(id uuid.UUID) *ProfileBuilder {
	b.profile.UserID = id
	return b
}

// WithDiet sets the diet type
func (b *ProfileBuilder) WithDiet(diet nutrition.DietType) *ProfileBuilder {
	b.profile.DietType = diet
	return b
}

// WithGoal sets the nutritional goal
func (b *ProfileBuilder) WithGoal(goal nutrition.Goal) *ProfileBuilder {
	b.profile.Goal = goal
	return b
}

// WithActivity sets the activity level
func (b *ProfileBuilder) WithActivity(activity nutrition.ActivityLevel) *ProfileBuilder {
	b.profile.Activity = activity
	return b
}

// WithMealsPerDay sets the meal count
func (b *ProfileBuilder) WithMealsPerDay(meals int) *ProfileBuilder {
	b.profile.MealsPerDay = meals
	return b
}

// WithConditions sets the health conditions
func (b *ProfileBuilder) WithConditions(conditions mealplan.HealthConditions) *ProfileBuilder {
	b.profile.HealthConditions = conditions
	return b
}

// WithRestrictions sets the dietary restrictions
func (b *ProfileBuilder) WithRestrictions(restrictions ...string) *ProfileBuilder {
	b.profile.DietaryRestrictions = restrictions
	return b
}

// Build returns the constructed profile
func (b *ProfileBuilder) Build() mealplan.UserProfile {
	return b.profile
}

// PreferenceFactory creates preference signals for tests
type PreferenceFactory struct {
	faker *gofakeit.Faker
}

// NewPreferenceFactory creates a new preference factory with seeded faker
func NewPreferenceFactory(seed int64) *PreferenceFactory {
	return &PreferenceFactory{
		faker: gofakeit.New(seed),
	}
}

// FoodLike creates a positive food preference
func (f *PreferenceFactory) FoodLike(foodKey string) mealplan.UserPreference {
	return mealplan.UserPreference{
		Type:       mealplan.PreferenceFoodLikes,
		Key:        foodKey,
		Value:      f.faker.Float64Range(0.5, 1),
		Confidence: f.faker.Float64Range(0.7, 1),
	}
}

// FoodVeto creates a food restriction strong enough to veto templates
func (f *PreferenceFactory) FoodVeto(foodKey string) mealplan.UserPreference {
	return mealplan.UserPreference{
		Type:       mealplan.PreferenceFoodRestrictions,
		Key:        foodKey,
		Value:      -1,
		Confidence: 1,
	}
}

// TemplateLike creates a positive template preference
func (f *PreferenceFactory) TemplateLike(templateName string) mealplan.UserPreference {
	return mealplan.UserPreference{
		Type:       mealplan.PreferenceTemplateLikes,
		Key:        templateName,
		Value:      f.faker.Float64Range(0.5, 1),
		Confidence: f.faker.Float64Range(0.7, 1),
	}
}

// Mapping creates a food-health benefit mapping
func (f *PreferenceFactory) Mapping(foodKey string, condition nutrition.HealthCondition, benefit float64) mealplan.FoodHealthMapping {
	return mealplan.FoodHealthMapping{
		FoodKey:      foodKey,
		Condition:    condition,
		BenefitScore: benefit,
	}
}
