package errorvalues

import "errors"

var (
	ErrFoodNotFound    = errors.New("food log doesn't exist")
	ErrFoodNotUnique   = errors.New("more than one food log for date")
	ErrWorkoutNotFound = errors.New("workout doesn't exist")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTargets  = errors.New("macro targets must be positive")
)
