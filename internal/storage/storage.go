package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage is the file store the product catalog writes images through.
type Storage interface {
	// Save stores a file at the given path.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a file from the given path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the file.
	GetURL(ctx context.Context, path string) (string, error)
}

// Config holds storage configuration.
type Config struct {
	Type       string // local, s3
	BasePath   string // for local storage
	BaseURL    string // public URL base
	Bucket     string
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string // custom S3-compatible endpoint
	PublicRead bool
}

// NewStorage creates a storage instance based on configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
