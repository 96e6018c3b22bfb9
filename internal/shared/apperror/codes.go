package apperror

const (
	// Client errors (4xx)
	CodeInvalidArgument     = "INVALID_ARGUMENT"
	CodeInvalidDateRange    = "INVALID_DATE_RANGE"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeNotPending          = "NOT_PENDING"
	CodeEmailConflict       = "EMAIL_CONFLICT"
	CodeNotFound            = "NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeInvalidState        = "INVALID_STATE"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
