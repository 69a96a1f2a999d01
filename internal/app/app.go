package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autobuy_backend/internal/auth"
	"autobuy_backend/internal/config"
	"autobuy_backend/internal/handlers"
	"autobuy_backend/internal/logger"
	"autobuy_backend/internal/middleware"
	"autobuy_backend/internal/models"
	"autobuy_backend/internal/pkg/email"
	"autobuy_backend/internal/repositories"
	"autobuy_backend/internal/routes"
	"autobuy_backend/internal/services"
	"autobuy_backend/internal/storage"
	"autobuy_backend/internal/validator"
	"autobuy_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin account", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	workers.NewOTPCleanupWorker(repositories.NewOTPRepository(gormDB), time.Hour).Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	mailer := newMailer(cfg)

	serviceContainer := services.NewServiceContainer(gormDB, cfg, mailer, storageInstance)

	customValidator := validator.New()
	appHandlers := handlers.NewAppHandlers(customValidator, serviceContainer, cfg.SessionTTL())

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, serviceContainer.Tokens, repositories.NewAccountRepository(gormDB))

	return ginRouter
}

// newMailer builds the SMTP sender, falling back to a mock when the
// transport is not configured so local development works offline.
func newMailer(cfg *config.Config) email.Mailer {
	emailCfg := email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		Username:     cfg.Email.SMTPUsername,
		Password:     cfg.Email.SMTPPassword,
		FromEmail:    cfg.Email.FromEmail,
		FromName:     cfg.Email.FromName,
		TemplatePath: cfg.Email.TemplatesDir,
	}
	if err := emailCfg.Validate(); err != nil {
		logger.Warn("Email transport not configured, using mock mailer", "reason", err)
		return &MockMailer{}
	}

	mailer, err := email.NewGomailSender(emailCfg)
	if err != nil {
		logger.Warn("Failed to build SMTP sender, using mock mailer", "error", err)
		return &MockMailer{}
	}
	return mailer
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// Migrate creates or updates every table. The test server calls it
// against its own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.BuyerProfile{},
		&models.BrokerProfile{},
		&models.Product{},
		&models.OTPRecord{},
		&models.Upload{},
	)
}

// seedFirstAdmin creates the bootstrap admin account from config. The
// admin register endpoint is open, so a deployment that wants a
// pre-provisioned admin sets these values instead.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.Account
	result := db.Where("role = ? AND email = ?", models.RoleAdmin, adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin account already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin account: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.Account{
		Email:               adminEmail,
		PasswordHash:        hash,
		Role:                models.RoleAdmin,
		Approved:            true,
		Active:              true,
		LastChangedPassword: time.Now().Truncate(time.Second),
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info("First admin account created", "email", adminEmail)
	return nil
}
