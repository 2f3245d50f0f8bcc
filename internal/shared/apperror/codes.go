package apperror

// 4xx
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeValidation      = "VALIDATION_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInvalidState    = "INVALID_STATE"
	CodeProcessing      = "PROCESSING"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
)

// 5xx, plus PARTIAL_FAILURE which is sent with 207.
const (
	CodeInternalError      = "INTERNAL_ERROR"
	CodeStoreError         = "STORE_ERROR"
	CodePartialFailure     = "PARTIAL_FAILURE"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
