package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"autobuy_backend/pkg/apperrors"
)

// HashCost is the bcrypt work factor used for passwords and OTP codes.
const HashCost = 12

// PasswordRule is returned verbatim to clients on policy violations.
const PasswordRule = "Password must contain at least 1 lowercase, 1 uppercase, 1 number, 1 symbol (@$!%?&#), and be at least 8 characters long"

const passwordSymbols = "@$!%?&#"

// HashPassword produces a bcrypt hash at the shared cost factor.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	return string(bytes), err
}

// HashOTP hashes a one-time code at the same cost as passwords.
func HashOTP(code string) (string, error) {
	return HashPassword(code)
}

// CheckPasswordHash reports whether password matches the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword enforces the account password policy: lowercase,
// uppercase, digit and one of the fixed symbol set, minimum 8 characters,
// no characters outside those classes.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return apperrors.PasswordPolicyError(PasswordRule)
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, c):
			hasSymbol = true
		default:
			return apperrors.PasswordPolicyError(PasswordRule)
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSymbol {
		return apperrors.PasswordPolicyError(PasswordRule)
	}
	return nil
}

// GenerateOTPCode draws a uniform 4-digit code in [1000, 9999].
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", 1000+n.Int64()), nil
}
