package routes

import (
	"autobuy_backend/internal/auth"
	"autobuy_backend/internal/handlers"
	"autobuy_backend/internal/middleware"
	"autobuy_backend/internal/models"
	"autobuy_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

func registerSellerRoutes(
	r *gin.Engine,
	h *handlers.AppHandlers,
	tokens *auth.TokenService,
	accountRepo repositories.AccountRepository,
) {
	seller := r.Group("/seller")
	{
		seller.POST("/register", h.AuthHandler.Register(models.RoleSeller))
		seller.POST("/verification", h.AuthHandler.Verify(models.RoleSeller))
	}

	gated := r.Group("/seller")
	gated.Use(middleware.RequireRole(models.RoleSeller, tokens, accountRepo))
	{
		gated.GET("/profile", h.ProfileHandler.Profile)
		gated.PUT("/edit-profile", h.ProfileHandler.UpdateProfile)

		gated.GET("/products", h.ProductHandler.ListOwn)
		gated.POST("/add-product", h.ProductHandler.AddProduct)
		gated.PUT("/edit-product", h.ProductHandler.EditProduct)
		gated.DELETE("/delete-product", h.ProductHandler.DeleteProduct)

		gated.POST("/upload-photo", h.ProductHandler.UploadPhoto)
		gated.DELETE("/delete-photo", h.ProductHandler.DeletePhoto)
	}
}
