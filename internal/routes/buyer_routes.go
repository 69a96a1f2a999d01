package routes

import (
	"autobuy_backend/internal/auth"
	"autobuy_backend/internal/handlers"
	"autobuy_backend/internal/middleware"
	"autobuy_backend/internal/models"
	"autobuy_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

func registerBuyerRoutes(
	r *gin.Engine,
	h *handlers.AppHandlers,
	tokens *auth.TokenService,
	accountRepo repositories.AccountRepository,
) {
	buyer := r.Group("/buyer")
	{
		buyer.POST("/register", h.AuthHandler.Register(models.RoleBuyer))
		buyer.POST("/verification", h.AuthHandler.Verify(models.RoleBuyer))
	}

	gated := r.Group("/buyer")
	gated.Use(middleware.RequireRole(models.RoleBuyer, tokens, accountRepo))
	{
		gated.GET("/profile", h.ProfileHandler.Profile)
		gated.PUT("/edit-profile", h.ProfileHandler.UpdateProfile)
		gated.GET("/products", h.ProductHandler.ListAll)
		gated.GET("/products/category/:category", h.ProductHandler.ListByCategory)
		gated.GET("/brokers", h.ProfileHandler.ListBrokers)
	}
}
