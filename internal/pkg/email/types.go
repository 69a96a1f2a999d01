package email

// Mailer is the narrow transport interface the OTP engine depends on.
// Implementations must treat a returned error as a terminal dispatch
// failure for the request; there is no automatic retry.
type Mailer interface {
	// Send delivers a single HTML email.
	Send(to, subject, htmlBody string) error

	// SendVerificationOTP mails the signup/resend verification code.
	SendVerificationOTP(to, code string, ttlMinutes int) error

	// SendRecoveryOTP mails the forgot-password recovery code.
	SendRecoveryOTP(to, code string, ttlMinutes int) error
}

// verificationData feeds the verification template.
type verificationData struct {
	Email      string
	Code       string
	TTLMinutes int
}

// recoveryData feeds the recovery template.
type recoveryData struct {
	Email      string
	Code       string
	TTLMinutes int
}
