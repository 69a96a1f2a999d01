package routes

import (
	"autobuy_backend/internal/auth"
	"autobuy_backend/internal/handlers"
	"autobuy_backend/internal/middleware"
	"autobuy_backend/internal/models"
	"autobuy_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(
	r *gin.Engine,
	h *handlers.AppHandlers,
	tokens *auth.TokenService,
	accountRepo repositories.AccountRepository,
) {
	admin := r.Group("/admin")
	{
		admin.POST("/register", h.AuthHandler.Register(models.RoleAdmin))
	}

	gated := r.Group("/admin")
	gated.Use(middleware.RequireRole(models.RoleAdmin, tokens, accountRepo))
	{
		gated.GET("/profile", h.ProfileHandler.Profile)
		gated.PUT("/edit-profile", h.ProfileHandler.UpdateProfile)
		gated.PUT("/accounts/:role/:id/active", h.AdminHandler.SetActive)
	}
}
