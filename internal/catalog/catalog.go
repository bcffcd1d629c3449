// Package catalog provides the static food and meal-template catalogs the
// generation engine draws from. Both catalogs are immutable after
// construction and safe for concurrent use.
package catalog

import (
	"fmt"

	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
)

// FoodNotFoundError indicates a template referenced a food missing from
// the catalog. This is a catalog/template inconsistency, not a runtime
// condition, so callers are expected to fail loudly.
type FoodNotFoundError struct {
	FoodKey string
}

func (e *FoodNotFoundError) Error() string {
	return fmt.Sprintf("food not found in catalog: %s", e.FoodKey)
}

// FoodCatalog is a keyed lookup of every known food
type FoodCatalog struct {
	foods map[string]nutrition.Food
	order []string
}

// NewFoodCatalog builds the default food catalog
func NewFoodCatalog() *FoodCatalog {
	return newFoodCatalog(defaultFoods)
}

// NewFoodCatalogFrom builds a catalog over a custom food set
func NewFoodCatalogFrom(foods []nutrition.Food) *FoodCatalog {
	return newFoodCatalog(foods)
}

func newFoodCatalog(foods []nutrition.Food) *FoodCatalog {
	c := &FoodCatalog{foods: make(map[string]nutrition.Food, len(foods))}
	for _, f := range foods {
		c.foods[f.Key] = f
		c.order = append(c.order, f.Key)
	}
	return c
}

// Get returns the food for a key, or a FoodNotFoundError for unknown keys
func (c *FoodCatalog) Get(key string) (nutrition.Food, error) {
	food, ok := c.foods[key]
	if !ok {
		return nutrition.Food{}, &FoodNotFoundError{FoodKey: key}
	}
	return food, nil
}

// Keys returns all food keys in catalog order
func (c *FoodCatalog) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Len returns the number of foods in the catalog
func (c *FoodCatalog) Len() int {
	return len(c.foods)
}

// TemplateCatalog holds all meal templates bucketed by diet type and slot.
// Bucket order is the catalog definition order, which gives the engine its
// deterministic tie-break.
type TemplateCatalog struct {
	buckets map[nutrition.DietType]map[nutrition.MealSlot][]mealplan.MealTemplate
}

// NewTemplateCatalog builds the default template catalog
func NewTemplateCatalog() *TemplateCatalog {
	return newTemplateCatalog(defaultTemplates)
}

// NewTemplateCatalogFrom builds a catalog over a custom template set
func NewTemplateCatalogFrom(templates []mealplan.MealTemplate) *TemplateCatalog {
	return newTemplateCatalog(templates)
}

func newTemplateCatalog(templates []mealplan.MealTemplate) *TemplateCatalog {
	c := &TemplateCatalog{
		buckets: make(map[nutrition.DietType]map[nutrition.MealSlot][]mealplan.MealTemplate),
	}
	for _, t := range templates {
		slots, ok := c.buckets[t.DietType]
		if !ok {
			slots = make(map[nutrition.MealSlot][]mealplan.MealTemplate)
			c.buckets[t.DietType] = slots
		}
		slots[t.Slot] = append(slots[t.Slot], t)
	}
	return c
}

// Bucket returns the templates for a diet and slot in catalog order.
// Diets without templates for the slot fall back to the omnivore bucket.
func (c *TemplateCatalog) Bucket(diet nutrition.DietType, slot nutrition.MealSlot) []mealplan.MealTemplate {
	slots, ok := c.buckets[diet]
	if !ok {
		slots = c.buckets[nutrition.DietTypeOmnivore]
	}
	templates := slots[slot]
	out := make([]mealplan.MealTemplate, len(templates))
	copy(out, templates)
	return out
}

// AllForDiet returns every template for a diet across all slots,
// in slot order breakfast, lunch, dinner, snack.
func (c *TemplateCatalog) AllForDiet(diet nutrition.DietType) []mealplan.MealTemplate {
	var all []mealplan.MealTemplate
	for _, slot := range []nutrition.MealSlot{
		nutrition.SlotBreakfast,
		nutrition.SlotLunch,
		nutrition.SlotDinner,
		nutrition.SlotSnack,
	} {
		all = append(all, c.Bucket(diet, slot)...)
	}
	return all
}

// Validate asserts that every template is well formed and every component
// references a food present in the food catalog.
func (c *TemplateCatalog) Validate(foods *FoodCatalog) error {
	for _, slots := range c.buckets {
		for _, templates := range slots {
			for _, t := range templates {
				if err := t.Validate(); err != nil {
					return fmt.Errorf("template %q: %w", t.Name, err)
				}
				for _, component := range t.Components {
					if _, err := foods.Get(component.FoodKey); err != nil {
						return fmt.Errorf("template %q: %w", t.Name, err)
					}
				}
			}
		}
	}
	return nil
}
