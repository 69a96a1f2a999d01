package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		TemplatesDir string `yaml:"templates_dir"`
	} `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret"`
		// Session token lifetime in minutes. All flows issue tokens with
		// this one TTL; the legacy service varied it per call site.
		SessionTTL int `yaml:"session_ttl"`
	} `yaml:"jwt"`

	OTP struct {
		// Verification covers signup and resend; recovery covers
		// forgot-password. Minutes.
		VerificationTTL int `yaml:"verification_ttl"`
		RecoveryTTL     int `yaml:"recovery_ttl"`
	} `yaml:"otp"`

	Storage struct {
		Type       string `yaml:"type"`      // local, s3
		BasePath   string `yaml:"base_path"` // for local storage
		BaseURL    string `yaml:"base_url"`  // public URL base
		Bucket     string `yaml:"bucket"`
		Region     string `yaml:"region"`
		AccessKey  string `yaml:"access_key"`
		SecretKey  string `yaml:"secret_key"`
		Endpoint   string `yaml:"endpoint"`
		UseSSL     bool   `yaml:"use_ssl"`
		PublicRead bool   `yaml:"public_read"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // bytes
		AllowedTypes []string `yaml:"allowed_types"` // MIME types
		MaxImageEdge int      `yaml:"max_image_edge"`
		ImageQuality int      `yaml:"image_quality"` // JPEG quality (1-100)
	} `yaml:"upload"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig populates AppConfig from config.yaml, with environment
// variables taking precedence. A present DATABASE_URL switches to the
// env-only mode used by tests and containers.
func LoadConfig() {
	var cfg Config

	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("FROM_EMAIL")

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/files"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.JWT.SessionTTL <= 0 {
		cfg.JWT.SessionTTL = 60 // 1 hour, matching the legacy login flow
	}
	if cfg.OTP.VerificationTTL <= 0 {
		cfg.OTP.VerificationTTL = 60
	}
	if cfg.OTP.RecoveryTTL <= 0 {
		cfg.OTP.RecoveryTTL = 5
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "AutoBuy"
	}
	if cfg.Email.TemplatesDir == "" {
		cfg.Email.TemplatesDir = "templates/email"
	}
	if cfg.Upload.MaxSize <= 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"image/jpeg", "image/png", "image/gif", "image/webp",
		}
	}
	if cfg.Upload.MaxImageEdge <= 0 {
		cfg.Upload.MaxImageEdge = 1920
	}
	if cfg.Upload.ImageQuality <= 0 {
		cfg.Upload.ImageQuality = 85
	}
}

// SessionTTL returns the configured session token lifetime.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.JWT.SessionTTL) * time.Minute
}

// VerificationOTPTTL returns the signup/resend OTP lifetime.
func (c *Config) VerificationOTPTTL() time.Duration {
	return time.Duration(c.OTP.VerificationTTL) * time.Minute
}

// RecoveryOTPTTL returns the forgot-password OTP lifetime.
func (c *Config) RecoveryOTPTTL() time.Duration {
	return time.Duration(c.OTP.RecoveryTTL) * time.Minute
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
