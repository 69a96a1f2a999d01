package handlers

import (
	"time"

	"autobuy_backend/internal/services"
	"autobuy_backend/internal/validator"
)

// AppHandlers holds every HTTP handler in the application.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	ProfileHandler *ProfileHandler
	ProductHandler *ProductHandler
	AdminHandler   *AdminHandler
}

func NewAppHandlers(v *validator.Validator, sc *services.ServiceContainer, sessionTTL time.Duration) *AppHandlers {
	return &AppHandlers{
		AuthHandler:    NewAuthHandler(v, sc.AuthService, sc.OTPService, sc.Tokens, sessionTTL),
		UserHandler:    NewUserHandler(v, sc.AuthService, sc.OTPService, sc.AccountService, sc.Tokens, sessionTTL),
		ProfileHandler: NewProfileHandler(v, sc.AccountService),
		ProductHandler: NewProductHandler(v, sc.ProductService),
		AdminHandler:   NewAdminHandler(v, sc.AccountService),
	}
}
