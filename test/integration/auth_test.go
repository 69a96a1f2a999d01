package integration_test

import (
	"net/http"
	"testing"
	"time"

	"autobuy_backend/internal/models"
	"autobuy_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationAndVerificationFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	registerBody := map[string]interface{}{
		"first_name": "Aidos",
		"last_name":  "Bekov",
		"email":      "aidos@test.com",
		"password":   "Passw0rd!",
	}

	regRes, regBody := ts.SendRequest(t, http.MethodPost, "/buyer/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBody, "Verification OTP email sent to aidos@test.com")
	sessionToken := helpers.AuthCookie(t, regRes)

	// Login is refused until the email is verified.
	loginBody := map[string]interface{}{"email": "aidos@test.com", "password": "Passw0rd!"}
	logRes, logBodyStr := ts.SendRequest(t, http.MethodPost, "/users/login", "", loginBody)
	assert.Equal(t, http.StatusUnauthorized, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "Please verify your email.")

	// Swap the random code for a known one and verify.
	var account models.Account
	require.NoError(t, ts.DB.Where("email = ? AND role = ?", "aidos@test.com", models.RoleBuyer).First(&account).Error)
	helpers.SeedOTP(t, ts.DB, &account, "4821", time.Hour)

	verRes, verBody := ts.SendRequest(t, http.MethodPost, "/buyer/verification", sessionToken, map[string]interface{}{"otp": "4821"})
	assert.Equal(t, http.StatusOK, verRes.StatusCode)
	assert.Contains(t, verBody, "User email verified successfully.")

	// Now login succeeds and returns the profile.
	logRes, logBodyStr = ts.SendRequest(t, http.MethodPost, "/users/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "aidos@test.com")
	assert.NotEmpty(t, helpers.AuthCookie(t, logRes))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	helpers.CreateAccount(t, ts.DB, models.RoleBuyer, "dup@test.com", "Passw0rd!", true)

	res, body := ts.SendRequest(t, http.MethodPost, "/buyer/register", "", map[string]interface{}{
		"first_name": "Dup",
		"last_name":  "User",
		"email":      "dup@test.com",
		"password":   "Passw0rd!",
	})
	assert.Equal(t, http.StatusNotAcceptable, res.StatusCode)
	assert.Contains(t, body, "Email already taken")

	// The same email is free under a different role.
	res, _ = ts.SendRequest(t, http.MethodPost, "/seller/register", "", map[string]interface{}{
		"first_name": "Dup",
		"last_name":  "User",
		"email":      "dup@test.com",
		"password":   "Passw0rd!",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestRegisterMissingFields(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/buyer/register", "", map[string]interface{}{
		"email":    "half@test.com",
		"password": "Passw0rd!",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Please provide all fields")
}

func TestAdminRegisterSkipsVerification(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/admin/register", "", map[string]interface{}{
		"email":    "root@test.com",
		"password": "Passw0rd!",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, "Registration successful")

	// Admin can log in immediately.
	token := helpers.LoginAccount(t, ts, "root@test.com", "Passw0rd!")
	assert.NotEmpty(t, token)
}

func TestLoginFailures(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	helpers.CreateAccount(t, ts.DB, models.RoleBuyer, "known@test.com", "Passw0rd!", true)

	t.Run("missing fields", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/users/login", "", map[string]interface{}{
			"email": "known@test.com",
		})
		assert.Equal(t, http.StatusNotAcceptable, res.StatusCode)
		assert.Contains(t, body, "Provide all fields")
	})

	t.Run("wrong password", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/users/login", "", map[string]interface{}{
			"email":    "known@test.com",
			"password": "WrongPass1!",
		})
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Contains(t, body, "Authentication Failed")
	})

	t.Run("unknown email", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/users/login", "", map[string]interface{}{
			"email":    "nobody@test.com",
			"password": "Passw0rd!",
		})
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	helpers.CreateAccount(t, ts.DB, models.RoleBuyer, "out@test.com", "Passw0rd!", true)
	token := helpers.LoginAccount(t, ts, "out@test.com", "Passw0rd!")

	res, body := ts.SendRequest(t, http.MethodPost, "/users/logout", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Logout Successful")
}

func TestPasswordRecoveryFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	account := helpers.CreateAccount(t, ts.DB, models.RoleBuyer, "forgot@test.com", "Passw0rd!", true)

	res, body := ts.SendRequest(t, http.MethodPost, "/users/forgotpassword", "", map[string]interface{}{
		"email": "forgot@test.com",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "OTP email sent to forgot@test.com")
	recoveryToken := helpers.AuthCookie(t, res)

	helpers.SeedOTP(t, ts.DB, account, "7755", 5*time.Minute)

	res, body = ts.SendRequest(t, http.MethodPost, "/users/changepassword", recoveryToken, map[string]interface{}{
		"otp":              "7755",
		"password":         "NewPass1!",
		"confirm_password": "NewPass1!",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Password changed successfully")

	// Old credential is dead, the new one works.
	res, _ = ts.SendRequest(t, http.MethodPost, "/users/login", "", map[string]interface{}{
		"email":    "forgot@test.com",
		"password": "Passw0rd!",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	token := helpers.LoginAccount(t, ts, "forgot@test.com", "NewPass1!")
	assert.NotEmpty(t, token)
}
