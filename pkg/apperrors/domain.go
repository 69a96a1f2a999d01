package apperrors

import (
	"net/http"
)

// Predefined errors for the account, session and OTP domains. The client
// contract distinguishes OTP expiry from an invalid code so the frontend can
// decide between requesting a new code and retrying input.

var (
	// Registration / profile conflicts. The API historically answers
	// conflicts with 406, not 409; clients depend on it.
	ErrEmailTaken    = New(CodeConflict, "account", "Email already taken", http.StatusNotAcceptable)
	ErrUsernameTaken = New(CodeConflict, "account", "Username already taken", http.StatusNotAcceptable)

	// Login and gate failures.
	ErrAuthFailed     = New(CodeAuthFailed, "auth", "Authentication Failed", http.StatusUnauthorized)
	ErrNotVerified    = New(CodeNotVerified, "auth", "Please verify your email.", http.StatusUnauthorized)
	ErrDeactivated    = New(CodeDeactivated, "auth", "Your account has been deactivated. Please contact customer support", http.StatusUnauthorized)
	ErrNoSession      = New(CodeNoSession, "auth", "Session expired, please login", http.StatusUnauthorized)
	ErrInvalidSession = New(CodeInvalidSession, "auth", "Invalid session, please log in again", http.StatusUnauthorized)
	ErrStaleSession   = New(CodeStaleSession, "auth", "Session expired, log in again", http.StatusUnauthorized)

	// OTP lifecycle.
	ErrOTPNoRecord    = New(CodeOTPNoRecord, "otp", "No record found, please sign up or login or request new OTP code.", http.StatusBadRequest)
	ErrOTPExpired     = New(CodeOTPExpired, "otp", "OTP code has expired, please request again.", http.StatusBadRequest)
	ErrOTPInvalidCode = New(CodeOTPInvalidCode, "otp", "Invalid code provided.", http.StatusNotAcceptable)

	// Password recovery.
	ErrAccountNotFound  = New(CodeNotFound, "account", "No record found", http.StatusNotFound)
	ErrPasswordMismatch = New(CodeValidationFailed, "account", "Passwords do not match", http.StatusBadRequest)

	// Catalog.
	ErrProductNotFound = New(CodeNotFound, "catalog", "Product not found", http.StatusNotFound)
)

// ErrMissingFields reports absent required input. The legacy login endpoint
// used 406 for this; everything else uses 400.
func ErrMissingFields(message string, httpCode int) *AppError {
	return New(CodeValidationFailed, "validation", message, httpCode)
}

// DispatchFailed wraps a mailer or persistence failure during OTP dispatch.
func DispatchFailed(err error) *AppError {
	return Wrap(err, CodeDispatchFailed, "otp", "Failed to send OTP email", http.StatusInternalServerError)
}

// PasswordPolicyError returns the full policy description as the message.
func PasswordPolicyError(rule string) *AppError {
	return New(CodeValidationFailed, "account", rule, http.StatusBadRequest)
}
