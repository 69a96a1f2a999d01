package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the signed session/verification payload. A token carries either
// an account ID (registration, login) or a bare email (resend, recovery,
// when the database identity is not yet confirmed).
type Claims struct {
	AccountID string `json:"_id,omitempty"`
	Email     string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 session tokens. The secret is
// process-wide configuration loaded once at startup. Tokens are never
// refreshed or chained; each flow that needs one issues a fresh token.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// WithClock overrides the time source. Tests only.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// IssueAccountToken signs a token whose subject is a known account ID.
func (s *TokenService) IssueAccountToken(accountID string, ttl time.Duration) (string, error) {
	return s.issue(Claims{AccountID: accountID}, ttl)
}

// IssueEmailToken signs a token scoped to an email address only.
func (s *TokenService) IssueEmailToken(email string, ttl time.Duration) (string, error) {
	return s.issue(Claims{Email: email}, ttl)
}

func (s *TokenService) issue(claims Claims, ttl time.Duration) (string, error) {
	now := s.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies the signature and expiry and returns the claims.
func (s *TokenService) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// IssuedAt extracts the issue time from parsed claims, zero when absent.
func (c *Claims) IssuedTime() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}
