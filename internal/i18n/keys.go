package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyTripNotFound       = "error.trip_not_found"
	ErrKeyInvalidTripID      = "error.invalid_trip_id"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyUnavailable        = "error.service_unavailable"
	ErrKeyLimitExceeded      = "error.limit_exceeded"
)

// Field validation keys.
const (
	ErrKeyValidationName        = "error.validation.name"
	ErrKeyValidationMinCalories = "error.validation.min_calories"
	ErrKeyValidationMaxWeight   = "error.validation.max_weight"
	ErrKeyValidationItems       = "error.validation.items"
)

// Success message translation keys.
const (
	SuccessKeyTripCreated = "success.trip_created"
	SuccessKeyTripDeleted = "success.trip_deleted"
)
