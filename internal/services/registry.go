package services

import (
	"autobuy_backend/internal/auth"
	"autobuy_backend/internal/config"
	"autobuy_backend/internal/imageprocessor"
	"autobuy_backend/internal/pkg/email"
	"autobuy_backend/internal/repositories"
	"autobuy_backend/internal/storage"

	"gorm.io/gorm"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService    AuthService
	OTPService     OTPService
	AccountService AccountService
	ProductService ProductService
	Tokens         *auth.TokenService
}

// NewServiceContainer wires repositories and collaborators into the
// service layer.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, mailer email.Mailer, store storage.Storage) *ServiceContainer {
	accountRepo := repositories.NewAccountRepository(db)
	otpRepo := repositories.NewOTPRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	productRepo := repositories.NewProductRepository(db)
	uploadRepo := repositories.NewUploadRepository(db)

	tokens := auth.NewTokenService(cfg.JWT.Secret)
	processor := imageprocessor.NewProcessor(cfg.Upload.ImageQuality)

	otpService := NewOTPService(
		otpRepo, accountRepo, tokens, mailer,
		cfg.VerificationOTPTTL(), cfg.RecoveryOTPTTL(), cfg.SessionTTL(),
	)

	return &ServiceContainer{
		AuthService:    NewAuthService(accountRepo, otpService, tokens, cfg.SessionTTL()),
		OTPService:     otpService,
		AccountService: NewAccountService(accountRepo, profileRepo, productRepo),
		ProductService: NewProductService(productRepo, uploadRepo, store, processor),
		Tokens:         tokens,
	}
}
