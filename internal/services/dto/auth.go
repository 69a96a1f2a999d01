package dto

// RegisterRequest covers all four roles. First and last name are
// required for everyone except Admin, which registers with email and
// password only.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// LoginResponse carries the sanitized account. The session token
// travels as the auth cookie, not in the body.
type LoginResponse struct {
	Success bool             `json:"success"`
	Data    *ProfileResponse `json:"data"`
}

type VerifyOTPRequest struct {
	OTP string `json:"otp"`
}

type ResendOTPRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}

type ChangePasswordRequest struct {
	OTP             string `json:"otp"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}
