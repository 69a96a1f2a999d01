package routes

import (
	"autobuy_backend/internal/auth"
	"autobuy_backend/internal/handlers"
	"autobuy_backend/internal/middleware"
	"autobuy_backend/internal/models"
	"autobuy_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

func registerBrokerRoutes(
	r *gin.Engine,
	h *handlers.AppHandlers,
	tokens *auth.TokenService,
	accountRepo repositories.AccountRepository,
) {
	broker := r.Group("/broker")
	{
		broker.POST("/register", h.AuthHandler.Register(models.RoleBroker))
		broker.POST("/verification", h.AuthHandler.Verify(models.RoleBroker))
	}

	gated := r.Group("/broker")
	gated.Use(middleware.RequireRole(models.RoleBroker, tokens, accountRepo))
	{
		gated.GET("/profile", h.ProfileHandler.Profile)
		gated.PUT("/edit-profile", h.ProfileHandler.UpdateProfile)
	}
}
