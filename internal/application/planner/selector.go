package planner

import (
	"github.com/alchemorsel/mealplanner/internal/catalog"
	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
	apperrors "github.com/alchemorsel/mealplanner/pkg/errors"
)

// templateSelector picks one template per slot, relaxing constraints one
// at a time when the strict ranking comes up empty
type templateSelector struct {
	scorer    *templateScorer
	templates *catalog.TemplateCatalog
}

// fallbackTiers are tried in order after the strict pass fails. Each tier
// relaxes one constraint and records the relaxation in the reason.
var fallbackTiers = []struct {
	opts rankOptions
	note string
}{
	{rankOptions{}, ""},
	{rankOptions{NeutralHealth: true}, "relaxed health ranking"},
	{rankOptions{IgnoreUsed: true, IgnoreThreshold: true}, "allowed repetition"},
}

// pick returns the best template for the slot. It never returns an
// already-used template unless every tier allowing fresh templates is
// exhausted. All candidates unusable at every tier yields a
// NoTemplateAvailable error.
func (s *templateSelector) pick(
	diet nutrition.DietType,
	slot nutrition.MealSlot,
	targets nutrition.MacroTargets,
	used map[string]bool,
	recent []string,
) (scoredTemplate, error) {
	candidates := s.templates.Bucket(diet, slot)

	for _, tier := range fallbackTiers {
		ranked, err := s.scorer.rank(candidates, targets, used, recent, tier.opts)
		if err != nil {
			return scoredTemplate{}, err
		}
		if len(ranked) == 0 {
			continue
		}
		best := ranked[0]
		if tier.note != "" {
			best.Reason += " (fallback: " + tier.note + ")"
		}
		return best, nil
	}

	// Every candidate for the slot is hard-excluded. Health exclusions
	// stop being safe to override here, so fall through to unscored picks
	// only to keep the plan complete.
	if len(candidates) > 0 {
		return unscoredSelection(candidates[0], "no scorable template for slot"), nil
	}

	if all := s.templates.AllForDiet(diet); len(all) > 0 {
		return unscoredSelection(all[0], "borrowed template from another slot"), nil
	}

	return scoredTemplate{}, apperrors.NewNoTemplateAvailableError(string(slot), string(diet))
}

// unscoredSelection wraps a template picked without scoring in a neutral
// breakdown so downstream logging stays uniform
func unscoredSelection(t mealplan.MealTemplate, note string) scoredTemplate {
	return scoredTemplate{
		Template: t,
		Scores: mealplan.ScoreBreakdown{
			MacroAlignment:  neutralScore,
			HealthCondition: neutralScore,
			Variety:         neutralScore,
			UserPreference:  neutralScore,
			Total:           neutralScore,
		},
		Reason: "Selected as best available option (fallback: " + note + ")",
	}
}
