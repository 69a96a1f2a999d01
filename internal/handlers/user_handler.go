package handlers

import (
	"fmt"
	"net/http"
	"time"

	"autobuy_backend/internal/auth"
	"autobuy_backend/internal/services"
	"autobuy_backend/internal/services/dto"
	"autobuy_backend/internal/validator"
	"autobuy_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the role-agnostic session endpoints under /users.
type UserHandler struct {
	*BaseHandler
	authService    services.AuthService
	otpService     services.OTPService
	accountService services.AccountService
	tokens         *auth.TokenService
	sessionTTL     time.Duration
}

func NewUserHandler(
	v *validator.Validator,
	authService services.AuthService,
	otpService services.OTPService,
	accountService services.AccountService,
	tokens *auth.TokenService,
	sessionTTL time.Duration,
) *UserHandler {
	return &UserHandler{
		BaseHandler:    NewBaseHandler(v),
		authService:    authService,
		otpService:     otpService,
		accountService: accountService,
		tokens:         tokens,
		sessionTTL:     sessionTTL,
	}
}

// Login handles POST /users/login for every role.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		apperrors.HandleError(c, apperrors.ErrMissingFields("Provide all fields", http.StatusNotAcceptable))
		return
	}

	account, token, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	profile, err := h.accountService.Profile(account)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	SetAuthCookie(c, token, int(h.sessionTTL.Seconds()))
	h.OK(c, gin.H{"data": profile})
}

// Logout handles POST /users/logout.
func (h *UserHandler) Logout(c *gin.Context) {
	ClearAuthCookie(c)
	h.OK(c, gin.H{"responseMessage": "Logout Successful"})
}

// ResendOTP handles POST /users/resendotp.
func (h *UserHandler) ResendOTP(c *gin.Context) {
	var req dto.ResendOTPRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if req.Email == "" {
		apperrors.HandleError(c, apperrors.ErrMissingFields("Please provide your email address", http.StatusNotAcceptable))
		return
	}

	token, err := h.otpService.Resend(req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	SetAuthCookie(c, token, int(h.sessionTTL.Seconds()))
	h.OK(c, gin.H{"message": fmt.Sprintf("Verification OTP email sent to %s", req.Email)})
}

// ForgotPassword handles POST /users/forgotpassword.
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if req.Email == "" {
		apperrors.HandleError(c, apperrors.ErrMissingFields("Please provide your email address", http.StatusNotAcceptable))
		return
	}

	token, err := h.otpService.RecoverPassword(req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	SetAuthCookie(c, token, int(h.sessionTTL.Seconds()))
	h.OK(c, gin.H{"message": fmt.Sprintf("OTP email sent to %s", req.Email)})
}

// ChangePassword handles POST /users/changepassword, the second half
// of the recovery flow. The email-scoped token from forgotpassword
// identifies the account.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if req.OTP == "" || req.Password == "" || req.ConfirmPassword == "" {
		apperrors.HandleError(c, apperrors.ErrMissingFields("Please provide all fields", http.StatusNotAcceptable))
		return
	}

	tokenStr, err := c.Cookie("auth")
	if err != nil || tokenStr == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Session expired. Request OTP again."))
		return
	}
	claims, err := h.tokens.Parse(tokenStr)
	if err != nil || claims.Email == "" {
		apperrors.HandleError(c, apperrors.ErrInvalidSession)
		return
	}

	if err := h.otpService.ChangePassword(claims.Email, req.OTP, req.Password, req.ConfirmPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	ClearAuthCookie(c)
	h.OK(c, gin.H{"message": "Password changed successfully. Please log in."})
}
