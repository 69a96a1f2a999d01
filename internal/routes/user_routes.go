package routes

import (
	"autobuy_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	users := r.Group("/users")
	{
		users.POST("/login", h.UserHandler.Login)
		users.POST("/logout", h.UserHandler.Logout)
		users.POST("/resendotp", h.UserHandler.ResendOTP)
		users.POST("/forgotpassword", h.UserHandler.ForgotPassword)
		users.POST("/changepassword", h.UserHandler.ChangePassword)
	}

	// Legacy alias for the login form.
	r.POST("/login", h.UserHandler.Login)
}
