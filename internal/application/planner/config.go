// Package planner provides the application layer for personalized
// meal-plan generation. It implements the use cases defined in the
// inbound ports.
package planner

import (
	"math"

	"github.com/go-playground/validator/v10"
)

// weightSumTolerance is the accepted drift when checking that the four
// scoring weights sum to 1.
const weightSumTolerance = 1e-9

// Config holds the tunable scoring and scaling parameters of the engine.
// All weights and thresholds live here rather than inline so behavior can
// be tuned and tested without code changes.
type Config struct {
	// MacroTolerance is the accepted relative deviation between a meal's
	// calories and its slot target
	MacroTolerance float64 `mapstructure:"macro_tolerance" validate:"gt=0,lte=1"`

	// MinTemplateScore is the minimum total score a candidate template
	// must reach to stay in the ranked list
	MinTemplateScore float64 `mapstructure:"min_template_score" validate:"gte=0,lte=1"`

	// MaxTemplates caps the ranked candidate list per slot
	MaxTemplates int `mapstructure:"max_templates" validate:"gte=1"`

	// Scoring weights; they must sum to 1
	MacroAlignmentWeight  float64 `mapstructure:"macro_alignment_weight" validate:"gte=0,lte=1"`
	HealthConditionWeight float64 `mapstructure:"health_condition_weight" validate:"gte=0,lte=1"`
	VarietyWeight         float64 `mapstructure:"variety_weight" validate:"gte=0,lte=1"`
	UserPreferenceWeight  float64 `mapstructure:"user_preference_weight" validate:"gte=0,lte=1"`

	// Portion scaling bounds
	ScaleMin float64 `mapstructure:"scale_min" validate:"gt=0"`
	ScaleMax float64 `mapstructure:"scale_max" validate:"gt=0,gtefield=ScaleMin"`
}

// DefaultConfig returns the reference engine configuration
func DefaultConfig() Config {
	return Config{
		MacroTolerance:        0.15,
		MinTemplateScore:      0.3,
		MaxTemplates:          10,
		MacroAlignmentWeight:  0.25,
		HealthConditionWeight: 0.30,
		VarietyWeight:         0.20,
		UserPreferenceWeight:  0.25,
		ScaleMin:              0.5,
		ScaleMax:              2.5,
	}
}

// Validate validates the configuration
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	sum := c.MacroAlignmentWeight + c.HealthConditionWeight + c.VarietyWeight + c.UserPreferenceWeight
	if math.Abs(sum-1) > weightSumTolerance {
		return ErrWeightsDoNotSumToOne
	}

	return nil
}
