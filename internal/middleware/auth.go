package middleware

import (
	"strings"

	"autobuy_backend/internal/auth"
	"autobuy_backend/internal/models"
	"autobuy_backend/internal/repositories"
	"autobuy_backend/pkg/apperrors"
	"autobuy_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthCookieName is the session cookie set at login and registration.
const AuthCookieName = "auth"

// RequireRole gates a route group to one role. The token is read from
// the auth cookie first, falling back to the Authorization header.
// The resolved account is stored in the gin context for handlers.
func RequireRole(role models.Role, tokens *auth.TokenService, accountRepo repositories.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := sessionToken(c)
		if tokenStr == "" {
			abortWith(c, apperrors.ErrNoSession)
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			abortWith(c, apperrors.ErrInvalidSession)
			return
		}
		if claims.AccountID == "" {
			abortWith(c, apperrors.ErrInvalidSession)
			return
		}

		account, err := accountRepo.FindByID(claims.AccountID)
		if err != nil {
			abortWith(c, apperrors.ErrAuthFailed)
			return
		}
		if account.Role != role {
			abortWith(c, apperrors.ErrAuthFailed)
			return
		}

		// Tokens issued before the last password change are dead.
		if claims.IssuedTime().Before(account.LastChangedPassword) {
			abortWith(c, apperrors.ErrStaleSession)
			return
		}

		if account.Role.RequiresApproval() {
			if !account.Approved {
				abortWith(c, apperrors.ErrNotVerified)
				return
			}
		}
		if !account.Active {
			abortWith(c, apperrors.ErrDeactivated)
			return
		}

		c.Set(string(contextkeys.AccountContextKey), account)
		c.Next()
	}
}

// AccountFromContext returns the account resolved by RequireRole.
func AccountFromContext(c *gin.Context) *models.Account {
	value, exists := c.Get(string(contextkeys.AccountContextKey))
	if !exists {
		return nil
	}
	account, ok := value.(*models.Account)
	if !ok {
		return nil
	}
	return account
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func abortWith(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.HTTPCode, apperrors.ErrorResponse{
		Success: false,
		Error:   err.Message,
	})
}
