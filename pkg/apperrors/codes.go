package apperrors

// ErrorCode identifies an error class independent of its HTTP mapping.
type ErrorCode string

const (
	// System and unknown failures.
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
	CodeDispatchFailed       ErrorCode = "DISPATCH_FAILED"

	// Generic business-logic codes.
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Authentication and sessions.
	CodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	CodeForbidden      ErrorCode = "FORBIDDEN"
	CodeAuthFailed     ErrorCode = "AUTH_FAILED"
	CodeNoSession      ErrorCode = "NO_SESSION"
	CodeInvalidSession ErrorCode = "INVALID_SESSION"
	CodeStaleSession   ErrorCode = "STALE_SESSION"
	CodeNotVerified    ErrorCode = "NOT_VERIFIED"
	CodeDeactivated    ErrorCode = "DEACTIVATED"

	// OTP lifecycle.
	CodeOTPNoRecord    ErrorCode = "OTP_NO_RECORD"
	CodeOTPExpired     ErrorCode = "OTP_EXPIRED"
	CodeOTPInvalidCode ErrorCode = "OTP_INVALID_CODE"
)
