package planner

import "errors"

// ErrWeightsDoNotSumToOne is returned by Config.Validate when the four
// scoring weights do not sum to 1.
var ErrWeightsDoNotSumToOne = errors.New("scoring weights must sum to 1")
