package helpers

import (
	"net/http"
	"testing"
	"time"

	"autobuy_backend/internal/auth"
	"autobuy_backend/internal/models"

	"gorm.io/gorm"
)

// CreateAccount inserts an account directly, bypassing the OTP flow.
// The password is stored hashed; pass the raw value to LoginAccount.
func CreateAccount(t *testing.T, db *gorm.DB, role models.Role, email, password string, approved bool) *models.Account {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	account := &models.Account{
		FirstName:    "Test",
		LastName:     string(role),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Approved:     approved,
		Active:       true,
		// Backdated so freshly issued tokens postdate it.
		LastChangedPassword: time.Now().Add(-time.Minute),
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("Failed to create test account %s: %v", email, err)
	}
	return account
}

// LoginAccount logs in through the API and returns the session token.
func LoginAccount(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/users/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("Login for %s failed with %d: %s", email, res.StatusCode, body)
	}
	return AuthCookie(t, res)
}

// SeedOTP replaces the account's pending code with a known value.
func SeedOTP(t *testing.T, db *gorm.DB, account *models.Account, code string, ttl time.Duration) {
	t.Helper()

	hash, err := auth.HashOTP(code)
	if err != nil {
		t.Fatalf("Failed to hash OTP: %v", err)
	}

	if err := db.Where("account_id = ?", account.ID).Delete(&models.OTPRecord{}).Error; err != nil {
		t.Fatalf("Failed to drop previous OTP records: %v", err)
	}
	record := &models.OTPRecord{
		AccountID: account.ID,
		Role:      account.Role,
		Email:     account.Email,
		OTPHash:   hash,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("Failed to seed OTP record: %v", err)
	}
}
