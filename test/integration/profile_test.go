package integration_test

import (
	"net/http"
	"testing"

	"autobuy_backend/internal/models"
	"autobuy_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestBuyerProfileRoundTrip(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	helpers.CreateAccount(t, ts.DB, models.RoleBuyer, "buyer@test.com", "Passw0rd!", true)
	token := helpers.LoginAccount(t, ts, "buyer@test.com", "Passw0rd!")

	res, body := ts.SendRequest(t, http.MethodGet, "/buyer/profile", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "buyer@test.com")

	res, body = ts.SendRequest(t, http.MethodPut, "/buyer/edit-profile", token, map[string]interface{}{
		"city":    "Almaty",
		"country": "Kazakhstan",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Update successful")

	res, body = ts.SendRequest(t, http.MethodGet, "/buyer/profile", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Almaty")
	assert.Contains(t, body, "Kazakhstan")
}

func TestProfileRequiresSession(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/buyer/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Session expired, please login")
}

func TestProfileRejectsWrongRole(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	helpers.CreateAccount(t, ts.DB, models.RoleSeller, "seller@test.com", "Passw0rd!", true)
	token := helpers.LoginAccount(t, ts, "seller@test.com", "Passw0rd!")

	// A seller session cannot open buyer routes.
	res, _ := ts.SendRequest(t, http.MethodGet, "/buyer/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestBrokerDirectory(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	helpers.CreateAccount(t, ts.DB, models.RoleBroker, "visible@test.com", "Passw0rd!", true)
	brokerToken := helpers.LoginAccount(t, ts, "visible@test.com", "Passw0rd!")
	res, _ := ts.SendRequest(t, http.MethodPut, "/broker/edit-profile", brokerToken, map[string]interface{}{
		"location":     "Astana",
		"specialities": []string{"sedans", "imports"},
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Unverified brokers stay out of the directory.
	helpers.CreateAccount(t, ts.DB, models.RoleBroker, "pending@test.com", "Passw0rd!", false)

	helpers.CreateAccount(t, ts.DB, models.RoleBuyer, "buyer@test.com", "Passw0rd!", true)
	buyerToken := helpers.LoginAccount(t, ts, "buyer@test.com", "Passw0rd!")

	res, body := ts.SendRequest(t, http.MethodGet, "/buyer/brokers", buyerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "visible@test.com")
	assert.Contains(t, body, "Astana")
	assert.NotContains(t, body, "pending@test.com")
}

func TestAdminDeactivatesAccount(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	seller := helpers.CreateAccount(t, ts.DB, models.RoleSeller, "seller@test.com", "Passw0rd!", true)
	sellerToken := helpers.LoginAccount(t, ts, "seller@test.com", "Passw0rd!")

	helpers.CreateAccount(t, ts.DB, models.RoleAdmin, "root@test.com", "Passw0rd!", true)
	adminToken := helpers.LoginAccount(t, ts, "root@test.com", "Passw0rd!")

	res, body := ts.SendRequest(t, http.MethodPut, "/admin/accounts/seller/"+seller.ID+"/active", adminToken, map[string]interface{}{
		"active": false,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Account deactivated")

	// The seller's live session dies with the flag.
	res, body = ts.SendRequest(t, http.MethodGet, "/seller/profile", sellerToken, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "deactivated")

	res, _ = ts.SendRequest(t, http.MethodPost, "/users/login", "", map[string]interface{}{
		"email":    "seller@test.com",
		"password": "Passw0rd!",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
