package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autobuy_backend/internal/auth"
	"autobuy_backend/internal/models"
	"autobuy_backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAccountRepo struct {
	accounts map[string]*models.Account
}

func (r *stubAccountRepo) FindByID(id string) (*models.Account, error) {
	if a, ok := r.accounts[id]; ok {
		return a, nil
	}
	return nil, repositories.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByEmail(role models.Role, email string) (*models.Account, error) {
	return nil, repositories.ErrAccountNotFound
}

func (r *stubAccountRepo) ProbeByEmail(email string) (*models.Account, error) {
	return nil, repositories.ErrAccountNotFound
}

func (r *stubAccountRepo) ExistsByEmail(role models.Role, email string) (bool, error) {
	return false, nil
}

func (r *stubAccountRepo) ExistsByUsername(role models.Role, username string) (bool, error) {
	return false, nil
}

func (r *stubAccountRepo) Create(account *models.Account) error { return nil }

func (r *stubAccountRepo) UpdateFields(id string, fields map[string]interface{}) error { return nil }

func (r *stubAccountRepo) SetApproved(id string, approved bool) error { return nil }

func (r *stubAccountRepo) SetActive(role models.Role, id string, active bool) error { return nil }

func (r *stubAccountRepo) UpdatePassword(id string, passwordHash string, changedAt time.Time) error {
	return nil
}

func (r *stubAccountRepo) FindByRole(role models.Role, limit, offset int) ([]models.Account, error) {
	return nil, nil
}

func (r *stubAccountRepo) CountByRole(role models.Role) (int64, error) { return 0, nil }

type gateFixture struct {
	router *gin.Engine
	tokens *auth.TokenService
	repo   *stubAccountRepo
}

func newGateFixture(t *testing.T, role models.Role) *gateFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &stubAccountRepo{accounts: map[string]*models.Account{}}
	tokens := auth.NewTokenService("gate-secret")

	router := gin.New()
	router.GET("/gated", RequireRole(role, tokens, repo), func(c *gin.Context) {
		account := AccountFromContext(c)
		require.NotNil(t, account)
		c.JSON(http.StatusOK, gin.H{"email": account.Email})
	})
	return &gateFixture{router: router, tokens: tokens, repo: repo}
}

func (f *gateFixture) seed(role models.Role, approved, active bool) *models.Account {
	account := &models.Account{
		BaseModel:           models.BaseModel{ID: "acc-1"},
		Email:               "gate@example.com",
		Role:                role,
		Approved:            approved,
		Active:              active,
		LastChangedPassword: time.Now().Add(-time.Hour),
	}
	f.repo.accounts[account.ID] = account
	return account
}

func (f *gateFixture) request(t *testing.T, cookie, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: cookie})
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Error
}

func TestRequireRole(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		f := newGateFixture(t, models.RoleBuyer)
		rec := f.request(t, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Session expired, please login", errorBody(t, rec))
	})

	t.Run("garbage token", func(t *testing.T) {
		f := newGateFixture(t, models.RoleBuyer)
		rec := f.request(t, "not-a-jwt", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid session, please log in again", errorBody(t, rec))
	})

	t.Run("email-only token is not a session", func(t *testing.T) {
		f := newGateFixture(t, models.RoleBuyer)
		token, err := f.tokens.IssueEmailToken("gate@example.com", time.Hour)
		require.NoError(t, err)

		rec := f.request(t, token, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid session, please log in again", errorBody(t, rec))
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newGateFixture(t, models.RoleBuyer)
		token, err := f.tokens.IssueAccountToken("ghost", time.Hour)
		require.NoError(t, err)

		rec := f.request(t, token, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authentication Failed", errorBody(t, rec))
	})

	t.Run("role mismatch", func(t *testing.T) {
		f := newGateFixture(t, models.RoleSeller)
		account := f.seed(models.RoleBuyer, true, true)
		token, err := f.tokens.IssueAccountToken(account.ID, time.Hour)
		require.NoError(t, err)

		rec := f.request(t, token, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authentication Failed", errorBody(t, rec))
	})

	t.Run("token predating a password change", func(t *testing.T) {
		f := newGateFixture(t, models.RoleBuyer)
		account := f.seed(models.RoleBuyer, true, true)
		account.LastChangedPassword = time.Now().Add(time.Hour)
		token, err := f.tokens.IssueAccountToken(account.ID, 2*time.Hour)
		require.NoError(t, err)

		rec := f.request(t, token, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Session expired, log in again", errorBody(t, rec))
	})

	t.Run("unverified account", func(t *testing.T) {
		f := newGateFixture(t, models.RoleBuyer)
		account := f.seed(models.RoleBuyer, false, true)
		token, err := f.tokens.IssueAccountToken(account.ID, time.Hour)
		require.NoError(t, err)

		rec := f.request(t, token, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Please verify your email.", errorBody(t, rec))
	})

	t.Run("deactivated account", func(t *testing.T) {
		f := newGateFixture(t, models.RoleBuyer)
		account := f.seed(models.RoleBuyer, true, false)
		token, err := f.tokens.IssueAccountToken(account.ID, time.Hour)
		require.NoError(t, err)

		rec := f.request(t, token, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Your account has been deactivated. Please contact customer support", errorBody(t, rec))
	})

	t.Run("admin skips the approved check", func(t *testing.T) {
		f := newGateFixture(t, models.RoleAdmin)
		account := f.seed(models.RoleAdmin, false, true)
		token, err := f.tokens.IssueAccountToken(account.ID, time.Hour)
		require.NoError(t, err)

		rec := f.request(t, token, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("cookie wins over the header", func(t *testing.T) {
		f := newGateFixture(t, models.RoleBuyer)
		account := f.seed(models.RoleBuyer, true, true)
		valid, err := f.tokens.IssueAccountToken(account.ID, time.Hour)
		require.NoError(t, err)

		rec := f.request(t, "bad-cookie", valid)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid session, please log in again", errorBody(t, rec))
	})

	t.Run("bearer header works without a cookie", func(t *testing.T) {
		f := newGateFixture(t, models.RoleBuyer)
		account := f.seed(models.RoleBuyer, true, true)
		token, err := f.tokens.IssueAccountToken(account.ID, time.Hour)
		require.NoError(t, err)

		rec := f.request(t, "", token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "gate@example.com")
	})
}
