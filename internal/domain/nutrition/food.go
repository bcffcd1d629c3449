package nutrition

// Food describes a single catalog food with nutrient content per 100g.
// Foods are immutable and defined once in the catalog.
type Food struct {
	Key      string
	Name     string
	Protein  float64 // grams per 100g
	Carbs    float64
	Fats     float64
	Calories float64
	Category FoodCategory

	// Restrictions lists diet or health condition tags this food
	// conflicts with; Benefits lists conditions it helps.
	Restrictions []string
	Benefits     []string
}

// Validate validates the food definition
func (f Food) Validate() error {
	if f.Key == "" || f.Name == "" {
		return ErrFoodUnnamed
	}
	if f.Protein < 0 || f.Carbs < 0 || f.Fats < 0 || f.Calories < 0 {
		return ErrNegativeMacros
	}
	return nil
}

// MacrosFor computes the macros provided by the given gram quantity
func (f Food) MacrosFor(grams float64) Macros {
	return Macros{
		Protein:  f.Protein * grams / 100,
		Carbs:    f.Carbs * grams / 100,
		Fats:     f.Fats * grams / 100,
		Calories: f.Calories * grams / 100,
	}
}

// RestrictedFor reports whether the food carries a restriction tag for
// the given health condition
func (f Food) RestrictedFor(condition HealthCondition) bool {
	for _, tag := range f.Restrictions {
		if tag == string(condition) {
			return true
		}
	}
	return false
}

// BenefitsCondition reports whether the food is tagged as beneficial
// for the given health condition
func (f Food) BenefitsCondition(condition HealthCondition) bool {
	for _, tag := range f.Benefits {
		if tag == string(condition) {
			return true
		}
	}
	return false
}
