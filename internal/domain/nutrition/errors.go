package nutrition

import "errors"

// Domain errors for nutritional values

var (
	ErrInvalidCalorieTarget = errors.New("calorie target must be greater than 0")
	ErrNegativeMacros       = errors.New("macro amounts cannot be negative")
	ErrInconsistentTargets  = errors.New("macro grams do not add up to the stated calories")
	ErrFoodUnnamed          = errors.New("food requires a key and a name")
)
