package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// GomailSender is the SMTP Mailer implementation.
type GomailSender struct {
	config    Config
	templates *TemplateManager
	dialer    *gomail.Dialer
}

func NewGomailSender(config Config) (Mailer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	return &GomailSender{
		config:    config,
		templates: tm,
		dialer:    gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password),
	}, nil
}

// Send delivers a single HTML message over SMTP. Each call dials a fresh
// connection; send volume here is a handful of OTP emails per signup.
func (s *GomailSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func (s *GomailSender) SendVerificationOTP(to, code string, ttlMinutes int) error {
	htmlBody, err := s.templates.Render("verification", verificationData{
		Email:      to,
		Code:       code,
		TTLMinutes: ttlMinutes,
	})
	if err != nil {
		return fmt.Errorf("failed to render verification template: %w", err)
	}

	return s.Send(to, "Verify Your Email", htmlBody)
}

func (s *GomailSender) SendRecoveryOTP(to, code string, ttlMinutes int) error {
	htmlBody, err := s.templates.Render("recovery", recoveryData{
		Email:      to,
		Code:       code,
		TTLMinutes: ttlMinutes,
	})
	if err != nil {
		return fmt.Errorf("failed to render recovery template: %w", err)
	}

	return s.Send(to, "Recover Your Account", htmlBody)
}
