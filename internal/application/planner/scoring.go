package planner

import (
	"math"
	"sort"
	"strings"

	"github.com/alchemorsel/mealplanner/internal/catalog"
	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/domain/nutrition"
)

// Scoring constants. The relative macro weights favor protein because it
// is the binding constraint for most goals.
const (
	proteinWeight = 0.4
	carbsWeight   = 0.3
	fatsWeight    = 0.3

	neutralScore = 0.5

	healthBenefitImpact   = 0.1
	categoryVarietyBonus  = 0.1
	cookingMethodBonus    = 0.1
	similarityPenalty     = 0.1
	recentTemplatesWindow = 3

	foodLikeImpact     = 0.2
	templateLikeImpact = 0.3
	cookingStyleImpact = 0.1

	// restrictionVeto is the score forced onto any template containing a
	// food the user has strongly restricted; it overrides all other
	// preference signals
	restrictionVeto      = 0.1
	restrictionThreshold = -0.5
)

var cookingMethods = []string{"grilled", "baked", "steamed", "stir-fried", "roasted", "raw"}

// scoredTemplate is one ranked candidate for a meal slot
type scoredTemplate struct {
	Template mealplan.MealTemplate
	Scores   mealplan.ScoreBreakdown
	Reason   string
}

// templateScorer ranks the candidate templates of one generation session.
// It holds only read-only session data and is safe to use for every slot
// of the same plan.
type templateScorer struct {
	cfg        Config
	foods      *catalog.FoodCatalog
	prefs      []mealplan.UserPreference
	mappings   map[string]map[nutrition.HealthCondition]float64
	conditions []nutrition.HealthCondition
}

func newTemplateScorer(
	cfg Config,
	foods *catalog.FoodCatalog,
	prefs []mealplan.UserPreference,
	mappings []mealplan.FoodHealthMapping,
	conditions []nutrition.HealthCondition,
) *templateScorer {
	byFood := make(map[string]map[nutrition.HealthCondition]float64)
	for _, m := range mappings {
		byCondition, ok := byFood[m.FoodKey]
		if !ok {
			byCondition = make(map[nutrition.HealthCondition]float64)
			byFood[m.FoodKey] = byCondition
		}
		byCondition[m.Condition] = m.BenefitScore
	}

	return &templateScorer{
		cfg:        cfg,
		foods:      foods,
		prefs:      prefs,
		mappings:   byFood,
		conditions: conditions,
	}
}

// rankOptions tune a ranking pass; the selector's fallback tiers relax
// them one at a time
type rankOptions struct {
	// NeutralHealth ignores the soft health ranking while keeping the
	// hard exclusions
	NeutralHealth bool
	// IgnoreUsed drops the no-repetition constraint
	IgnoreUsed bool
	// IgnoreThreshold keeps candidates below MinTemplateScore
	IgnoreThreshold bool
}

// rank scores, filters and sorts the candidates for one slot.
// The sort is stable, so equal candidates keep catalog order and the
// ranking is deterministic.
func (s *templateScorer) rank(
	candidates []mealplan.MealTemplate,
	targets nutrition.MacroTargets,
	used map[string]bool,
	recent []string,
	opts rankOptions,
) ([]scoredTemplate, error) {
	var ranked []scoredTemplate

	for _, t := range candidates {
		if !opts.IgnoreUsed && used[t.Name] {
			continue
		}

		excluded, err := s.hardExcluded(t)
		if err != nil {
			return nil, err
		}
		if excluded {
			continue
		}

		macroScore, err := s.macroAlignmentScore(t, targets)
		if err != nil {
			return nil, err
		}

		healthScore := neutralScore
		if !opts.NeutralHealth {
			healthScore, err = s.healthConditionScore(t)
			if err != nil {
				return nil, err
			}
		}

		varietyScore, err := s.varietyScore(t, recent)
		if err != nil {
			return nil, err
		}

		preferenceScore := s.userPreferenceScore(t)

		total := macroScore*s.cfg.MacroAlignmentWeight +
			healthScore*s.cfg.HealthConditionWeight +
			varietyScore*s.cfg.VarietyWeight +
			preferenceScore*s.cfg.UserPreferenceWeight

		if !opts.IgnoreThreshold && total < s.cfg.MinTemplateScore {
			continue
		}

		breakdown := mealplan.ScoreBreakdown{
			MacroAlignment:  macroScore,
			HealthCondition: healthScore,
			Variety:         varietyScore,
			UserPreference:  preferenceScore,
			Total:           total,
		}

		ranked = append(ranked, scoredTemplate{
			Template: t,
			Scores:   breakdown,
			Reason:   selectionReason(breakdown),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Scores.Total != ranked[j].Scores.Total {
			return ranked[i].Scores.Total > ranked[j].Scores.Total
		}
		return ranked[i].Scores.MacroAlignment > ranked[j].Scores.MacroAlignment
	})

	if s.cfg.MaxTemplates > 0 && len(ranked) > s.cfg.MaxTemplates {
		ranked = ranked[:s.cfg.MaxTemplates]
	}

	return ranked, nil
}

// templateMacros computes the un-scaled total macros of a template.
// A missing food is a catalog/template inconsistency and fails loudly.
func (s *templateScorer) templateMacros(t mealplan.MealTemplate) (nutrition.Macros, error) {
	var total nutrition.Macros
	for _, c := range t.Components {
		food, err := s.foods.Get(c.FoodKey)
		if err != nil {
			return nutrition.Macros{}, err
		}
		total = total.Add(food.MacrosFor(c.BaseGrams))
	}
	return total, nil
}

// macroAlignmentScore estimates how well the template can match the slot
// targets after naive calorie scaling
func (s *templateScorer) macroAlignmentScore(t mealplan.MealTemplate, targets nutrition.MacroTargets) (float64, error) {
	base, err := s.templateMacros(t)
	if err != nil {
		return 0, err
	}
	if base.Calories <= 0 {
		return 0, nil
	}

	scaled := base.Scale(targets.Calories / base.Calories)

	score := alignment(scaled.Protein, targets.Protein)*proteinWeight +
		alignment(scaled.Carbs, targets.Carbs)*carbsWeight +
		alignment(scaled.Fats, targets.Fats)*fatsWeight

	return math.Max(0, score), nil
}

// alignment is 1 when scaled hits the target exactly and decreases with
// the relative deviation
func alignment(scaled, target float64) float64 {
	if target <= 0 {
		if scaled <= 0 {
			return 1
		}
		return 0
	}
	return 1 - math.Abs(scaled-target)/target
}

// hardExcluded reports whether the template contains any food carrying a
// restriction tag for an active health condition
func (s *templateScorer) hardExcluded(t mealplan.MealTemplate) (bool, error) {
	for _, c := range t.Components {
		food, err := s.foods.Get(c.FoodKey)
		if err != nil {
			return false, err
		}
		for _, condition := range s.conditions {
			if food.RestrictedFor(condition) {
				return true, nil
			}
		}
	}
	return false, nil
}

// healthConditionScore starts neutral and rewards foods mapped as
// beneficial for the user's active conditions, weighted by portion size
func (s *templateScorer) healthConditionScore(t mealplan.MealTemplate) (float64, error) {
	score := neutralScore

	for _, c := range t.Components {
		if _, err := s.foods.Get(c.FoodKey); err != nil {
			return 0, err
		}

		byCondition, ok := s.mappings[c.FoodKey]
		if !ok {
			continue
		}
		for _, condition := range s.conditions {
			benefit, ok := byCondition[condition]
			if !ok {
				continue
			}
			score += benefit * portionWeight(c.BaseGrams) * healthBenefitImpact
		}
	}

	return clamp01(score), nil
}

// varietyScore rewards multi-food-group templates and distinct cooking
// methods, and penalizes templates textually similar to recent picks
func (s *templateScorer) varietyScore(t mealplan.MealTemplate, recent []string) (float64, error) {
	score := neutralScore

	categories := make(map[nutrition.FoodCategory]bool)
	for _, c := range t.Components {
		food, err := s.foods.Get(c.FoodKey)
		if err != nil {
			return 0, err
		}
		categories[food.Category] = true
	}
	score += float64(len(categories)) * categoryVarietyBonus

	lowerName := strings.ToLower(t.Name)
	for _, method := range cookingMethods {
		if strings.Contains(lowerName, method) {
			score += cookingMethodBonus
			break
		}
	}

	window := recent
	if len(window) > recentTemplatesWindow {
		window = window[len(window)-recentTemplatesWindow:]
	}
	for _, usedName := range window {
		if sharedTokens(t.Name, usedName) >= 2 {
			score -= similarityPenalty
			break
		}
	}

	return clamp01(score), nil
}

// sharedTokens counts case-insensitive name tokens two templates share
func sharedTokens(a, b string) int {
	tokens := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(a)) {
		tokens[word] = true
	}
	var shared int
	for _, word := range strings.Fields(strings.ToLower(b)) {
		if tokens[word] {
			shared++
			delete(tokens, word)
		}
	}
	return shared
}

// userPreferenceScore biases toward foods and templates the user has
// liked. A strongly restricted food vetoes the template outright.
func (s *templateScorer) userPreferenceScore(t mealplan.MealTemplate) float64 {
	for _, c := range t.Components {
		if pref, ok := s.findPreference(mealplan.PreferenceFoodRestrictions, c.FoodKey); ok {
			if pref.Value < restrictionThreshold {
				return restrictionVeto
			}
		}
	}

	score := neutralScore

	for _, c := range t.Components {
		if pref, ok := s.findPreference(mealplan.PreferenceFoodLikes, c.FoodKey); ok {
			weight := portionWeight(c.BaseGrams) * pref.Confidence
			score += pref.Value * weight * foodLikeImpact
		}
	}

	if pref, ok := s.findPreference(mealplan.PreferenceTemplateLikes, t.Name); ok {
		score += pref.Value * pref.Confidence * templateLikeImpact
	}

	if pref, ok := s.findPreference(mealplan.PreferenceCookingStyle, string(t.Difficulty)); ok {
		score += pref.Value * pref.Confidence * cookingStyleImpact
	}

	return clamp01(score)
}

func (s *templateScorer) findPreference(prefType mealplan.PreferenceType, key string) (mealplan.UserPreference, bool) {
	for _, p := range s.prefs {
		if p.Type == prefType && p.Key == key {
			return p, true
		}
	}
	return mealplan.UserPreference{}, false
}

// portionWeight normalizes base grams to [0,1] so that small garnish
// portions contribute less than main components
func portionWeight(baseGrams float64) float64 {
	return math.Min(baseGrams/100, 1)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// selectionReason summarizes why a template scored well
func selectionReason(scores mealplan.ScoreBreakdown) string {
	var reasons []string
	if scores.MacroAlignment > 0.8 {
		reasons = append(reasons, "excellent macro alignment")
	}
	if scores.HealthCondition > 0.7 {
		reasons = append(reasons, "beneficial for health conditions")
	}
	if scores.Variety > 0.6 {
		reasons = append(reasons, "adds variety to diet")
	}
	if scores.UserPreference > 0.6 {
		reasons = append(reasons, "matches user preferences")
	}

	if len(reasons) == 0 {
		return "Selected as best available option"
	}
	return "Selected for: " + strings.Join(reasons, ", ")
}
