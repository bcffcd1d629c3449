package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate_RejectsWeightsNotSummingToOne(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VarietyWeight = 0.5

	assert.ErrorIs(t, cfg.Validate(), ErrWeightsDoNotSumToOne)
}

func TestConfigValidate_RejectsOutOfRangeFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MacroTolerance = 0

	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ScaleMax = cfg.ScaleMin / 2

	assert.Error(t, cfg.Validate())
}
