package service

import "errors"

var (
	// ErrRepositoryNotConfigured is returned when the repository is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrTripNotFound is returned when a trip does not exist.
	ErrTripNotFound = errors.New("trip not found")
	// ErrInvalidTripID is returned when a trip id is not a valid identifier.
	ErrInvalidTripID = errors.New("invalid trip id")

	// ErrWeightBudgetTooLarge is returned when maxWeight exceeds the configured limit.
	ErrWeightBudgetTooLarge = errors.New("maxWeight exceeds the allowed limit")
	// ErrTooManyItems is returned when the request carries more items than allowed.
	ErrTooManyItems = errors.New("too many items")
	// ErrTableTooLarge is returned when items x maxWeight exceeds the allowed table size.
	ErrTableTooLarge = errors.New("selection table exceeds the allowed size")
)

// IsLimitError reports whether err is one of the request size limit errors.
// A table whose size overflows an int counts as one regardless of configuration.
func IsLimitError(err error) bool {
	return errors.Is(err, ErrWeightBudgetTooLarge) ||
		errors.Is(err, ErrTooManyItems) ||
		errors.Is(err, ErrTableTooLarge) ||
		errors.Is(err, ErrTableOverflow)
}
