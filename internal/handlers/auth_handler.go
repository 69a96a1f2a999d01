package handlers

import (
	"fmt"
	"net/http"
	"time"

	"autobuy_backend/internal/auth"
	"autobuy_backend/internal/models"
	"autobuy_backend/internal/services"
	"autobuy_backend/internal/services/dto"
	"autobuy_backend/internal/validator"
	"autobuy_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration and OTP verification for every role.
type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	otpService  services.OTPService
	tokens      *auth.TokenService
	sessionTTL  time.Duration
}

func NewAuthHandler(
	v *validator.Validator,
	authService services.AuthService,
	otpService services.OTPService,
	tokens *auth.TokenService,
	sessionTTL time.Duration,
) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(v),
		authService: authService,
		otpService:  otpService,
		tokens:      tokens,
		sessionTTL:  sessionTTL,
	}
}

// Register handles POST /{role}/register.
func (h *AuthHandler) Register(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequest
		if !h.BindAndValidateJSON(c, &req) {
			return
		}

		account, token, err := h.authService.Register(role, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		if role == models.RoleAdmin {
			h.Created(c, gin.H{"message": "Registration successful"})
			return
		}

		SetAuthCookie(c, token, int(h.sessionTTL.Seconds()))
		h.Created(c, gin.H{
			"message": fmt.Sprintf("Verification OTP email sent to %s", account.Email),
		})
	}
}

// Verify handles POST /{role}/verification. The subject comes from
// the auth cookie: account-scoped right after signup, email-scoped
// after a resend.
func (h *AuthHandler) Verify(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.VerifyOTPRequest
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
		if req.OTP == "" {
			apperrors.HandleError(c, apperrors.ErrMissingFields("Please provide OTP", http.StatusNotAcceptable))
			return
		}

		tokenStr, err := c.Cookie("auth")
		if err != nil || tokenStr == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Session expired. Request OTP again."))
			return
		}

		claims, err := h.tokens.Parse(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidSession)
			return
		}

		if err := h.otpService.Verify(role, claims.AccountID, claims.Email, req.OTP); err != nil {
			h.HandleServiceError(c, err)
			return
		}

		h.OK(c, gin.H{"message": "User email verified successfully."})
	}
}
