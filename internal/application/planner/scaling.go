package planner

import (
	"math"

	"github.com/alchemorsel/mealplanner/internal/catalog"
	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
)

// scaleCandidates are the multipliers tried around the naive calorie
// ratio when searching for the best macro fit
var scaleCandidates = [...]float64{1.0, 0.9, 1.1, 0.8, 1.2}

// portionScaler sizes a selected template to a slot's macro targets
type portionScaler struct {
	cfg   Config
	foods *catalog.FoodCatalog
}

// scaledPortion holds the sized components of one meal
type scaledPortion struct {
	Items []mealplan.MealItem
	Total nutrition.Macros
	Scale float64
}

// scale picks the factor that minimizes the weighted macro error and
// builds the per-component portions. Grams are rounded to whole numbers,
// so the returned totals are recomputed from the rounded portions rather
// than scaled directly.
func (p *portionScaler) scale(t mealplan.MealTemplate, targets nutrition.MacroTargets) (scaledPortion, error) {
	base, err := p.baseMacros(t)
	if err != nil {
		return scaledPortion{}, err
	}

	naive := 1.0
	if base.Calories > 0 && targets.Calories > 0 {
		naive = targets.Calories / base.Calories
	}

	best := p.clampScale(naive)
	bestError := math.MaxFloat64
	for _, multiplier := range scaleCandidates {
		factor := p.clampScale(naive * multiplier)
		if err := macroError(base.Scale(factor), targets); err < bestError {
			bestError = err
			best = factor
		}
	}

	items := make([]mealplan.MealItem, 0, len(t.Components))
	var total nutrition.Macros
	for _, c := range t.Components {
		food, err := p.foods.Get(c.FoodKey)
		if err != nil {
			return scaledPortion{}, err
		}
		grams := math.Round(c.BaseGrams * best)
		macros := food.MacrosFor(grams)
		items = append(items, mealplan.MealItem{
			FoodName: food.Name,
			Grams:    grams,
			Macros:   macros,
		})
		total = total.Add(macros)
	}

	return scaledPortion{Items: items, Total: total, Scale: best}, nil
}

func (p *portionScaler) baseMacros(t mealplan.MealTemplate) (nutrition.Macros, error) {
	var total nutrition.Macros
	for _, c := range t.Components {
		food, err := p.foods.Get(c.FoodKey)
		if err != nil {
			return nutrition.Macros{}, err
		}
		total = total.Add(food.MacrosFor(c.BaseGrams))
	}
	return total, nil
}

func (p *portionScaler) clampScale(factor float64) float64 {
	return math.Max(p.cfg.ScaleMin, math.Min(p.cfg.ScaleMax, factor))
}

// macroError is the protein-weighted relative deviation between scaled
// macros and the slot targets
func macroError(scaled nutrition.Macros, targets nutrition.MacroTargets) float64 {
	return relativeError(scaled.Protein, targets.Protein)*proteinWeight +
		relativeError(scaled.Carbs, targets.Carbs)*carbsWeight +
		relativeError(scaled.Fats, targets.Fats)*fatsWeight
}

func relativeError(scaled, target float64) float64 {
	if target <= 0 {
		if scaled <= 0 {
			return 0
		}
		return 1
	}
	return math.Abs(scaled-target) / target
}
