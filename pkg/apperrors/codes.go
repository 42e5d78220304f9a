package apperrors

// ErrorCode identifies a class of application error in API responses.
type ErrorCode string

const (
	// System errors
	CodeInternalError     ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError     ErrorCode = "DATABASE_ERROR"
	CodeTransactionFailed ErrorCode = "TRANSACTION_FAILED"

	// Business logic errors
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"

	// Authentication and authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
)
