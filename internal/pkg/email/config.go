package email

import "fmt"

// Config holds the SMTP transport settings.
type Config struct {
	SMTPHost     string
	SMTPPort     int
	Username     string
	Password     string
	FromEmail    string
	FromName     string
	TemplatePath string
}

// Validate checks the minimum required transport settings.
func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.SMTPPort)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}
