package app

// MockMailer swallows outgoing mail for local development and tests.
type MockMailer struct{}

func (m *MockMailer) Send(to, subject, htmlBody string) error            { return nil }
func (m *MockMailer) SendVerificationOTP(to, code string, ttl int) error { return nil }
func (m *MockMailer) SendRecoveryOTP(to, code string, ttl int) error     { return nil }
