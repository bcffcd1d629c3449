package nutrition

import "strings"

// Closed enum types for profile attributes. Legacy quiz answers arrive as
// free-text strings; the Normalize functions below are the single place
// where that text is interpreted.

// DietType represents the diet a user follows
type DietType string

const (
	DietTypeOmnivore    DietType = "omnivore"
	DietTypeVegetarian  DietType = "vegetarian"
	DietTypeVegan       DietType = "vegan"
	DietTypePescatarian DietType = "pescatarian"
	DietTypeKeto        DietType = "keto"
)

// NormalizeDietType maps a legacy quiz answer to a DietType.
// Unknown answers fall back to omnivore, matching the widest template pool.
func NormalizeDietType(raw string) DietType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "vegetarian":
		return DietTypeVegetarian
	case "vegan":
		return DietTypeVegan
	case "pescatarian":
		return DietTypePescatarian
	case "keto":
		return DietTypeKeto
	case "", "none", "omnivore":
		return DietTypeOmnivore
	default:
		return DietTypeOmnivore
	}
}

// Goal represents the user's primary fitness goal
type Goal string

const (
	GoalLoseFat          Goal = "lose_fat"
	GoalBuildMuscle      Goal = "build_muscle"
	GoalMaintainWeight   Goal = "maintain_weight"
	GoalImproveWellbeing Goal = "improve_wellbeing"
)

// NormalizeGoal maps a legacy quiz answer to a Goal
func NormalizeGoal(raw string) Goal {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "lose fat", "lose_fat":
		return GoalLoseFat
	case "build muscle", "build_muscle":
		return GoalBuildMuscle
	case "improve health & wellbeing", "improve_wellbeing":
		return GoalImproveWellbeing
	default:
		return GoalMaintainWeight
	}
}

// ActivityLevel represents how physically active a user is
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// NormalizeActivityLevel maps a legacy quiz answer to an ActivityLevel
func NormalizeActivityLevel(raw string) ActivityLevel {
	lower := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(lower, "extremely"):
		return ActivityExtremelyActive
	case strings.Contains(lower, "very"):
		return ActivityVeryActive
	case strings.Contains(lower, "moderately"):
		return ActivityModeratelyActive
	case strings.Contains(lower, "lightly"):
		return ActivityLightlyActive
	case strings.Contains(lower, "sedentary"):
		return ActivitySedentary
	default:
		return ActivityModeratelyActive
	}
}

// IsHighOutput reports whether the activity level warrants shifting
// calories toward the main training-day meals
func (a ActivityLevel) IsHighOutput() bool {
	return a == ActivityVeryActive || a == ActivityExtremelyActive
}

// MealSlot represents a named position in the day's eating schedule
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack     MealSlot = "snack"
)

// FoodCategory classifies a food by its dominant role in a meal
type FoodCategory string

const (
	CategoryProtein   FoodCategory = "protein"
	CategoryCarb      FoodCategory = "carb"
	CategoryFat       FoodCategory = "fat"
	CategoryDairy     FoodCategory = "dairy"
	CategoryVegetable FoodCategory = "vegetable"
	CategoryFruit     FoodCategory = "fruit"
	CategoryGrain     FoodCategory = "grain"
	CategoryLegume    FoodCategory = "legume"
	CategoryNut       FoodCategory = "nut"
	CategoryOil       FoodCategory = "oil"
)

// Difficulty represents cooking difficulty of a template
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyAdvanced Difficulty = "advanced"
)

// HealthCondition represents a medical condition relevant to meal planning
type HealthCondition string

const (
	ConditionDiabetes          HealthCondition = "diabetes"
	ConditionHighBloodPressure HealthCondition = "high blood pressure"
	ConditionHeartDisease      HealthCondition = "heart disease"
	ConditionThyroid           HealthCondition = "thyroid"
)

// NormalizeHealthCondition maps a legacy quiz answer to a HealthCondition.
// The empty string is returned for answers that name no known condition.
func NormalizeHealthCondition(raw string) HealthCondition {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "diabetes":
		return ConditionDiabetes
	case "high blood pressure", "high-blood-pressure":
		return ConditionHighBloodPressure
	case "heart disease", "heart-disease":
		return ConditionHeartDisease
	case "thyroid", "thyroid issues":
		return ConditionThyroid
	default:
		return ""
	}
}
