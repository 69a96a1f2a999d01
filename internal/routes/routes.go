package routes

import (
	"autobuy_backend/internal/auth"
	"autobuy_backend/internal/handlers"
	"autobuy_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route. The legacy URL layout is
// preserved: one path prefix per role plus the shared /users group.
func RegisterRoutes(
	router *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenService,
	accountRepo repositories.AccountRepository,
) {
	registerUserRoutes(router, appHandlers)
	registerBuyerRoutes(router, appHandlers, tokens, accountRepo)
	registerSellerRoutes(router, appHandlers, tokens, accountRepo)
	registerBrokerRoutes(router, appHandlers, tokens, accountRepo)
	registerAdminRoutes(router, appHandlers, tokens, accountRepo)
}
