package integration_test

import (
	"net/http"
	"testing"

	"crewboard_backend/internal/models"
	"crewboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin_Person(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	registerBody := map[string]interface{}{
		"email":        "crew@test.com",
		"password":     "super_password123",
		"kind":         "person",
		"display_name": "Ana Silva",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode, regBodyStr)
	assert.Contains(t, regBodyStr, "access_token")

	loginBody := map[string]interface{}{
		"email":    "crew@test.com",
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode, logBodyStr)
	assert.Contains(t, logBodyStr, "access_token")
}

func TestRegister_OrgCreatesOrganization(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	registerBody := map[string]interface{}{
		"email":    "camp@test.com",
		"password": "super_password123",
		"kind":     "org",
		"org_name": "Atlantic Surf Camp",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, regRes.StatusCode, regBodyStr)

	var org models.Organization
	err := tx.Where("slug = ?", "atlantic-surf-camp").First(&org).Error
	require.NoError(t, err, "registration should have created the organization")
	assert.Equal(t, "Atlantic Surf Camp", org.Name)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, existing := helpers.CreateAndLoginCrew(t, ts, tx)

	duplicateBody := map[string]interface{}{
		"email":    existing.Email,
		"password": "password_is_long_enough",
		"kind":     "person",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", duplicateBody)
	assert.Equal(t, http.StatusConflict, regRes.StatusCode, regBodyStr)
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, profile := helpers.CreateAndLoginCrew(t, ts, tx)

	loginBody := map[string]interface{}{
		"email":    profile.Email,
		"password": "not_the_password",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, bodyStr)
}

func TestMagicLink_FullFlow(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, profile := helpers.CreateAndLoginCrew(t, ts, tx)

	reqBody := map[string]interface{}{"email": profile.Email}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/magic-link", "", reqBody)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	// The token is only ever delivered by email; read it straight from the
	// store to continue the flow.
	var token models.MagicLinkToken
	require.NoError(t, tx.Where("email = ?", profile.Email).First(&token).Error)

	verifyBody := map[string]interface{}{"token": token.Token}
	verRes, verBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/magic-link/verify", "", verifyBody)
	assert.Equal(t, http.StatusOK, verRes.StatusCode, verBodyStr)
	assert.Contains(t, verBodyStr, "access_token")

	// Second use of the same token must fail.
	verRes2, verBodyStr2 := ts.SendRequest(t, "POST", "/api/v1/auth/magic-link/verify", "", verifyBody)
	assert.Equal(t, http.StatusUnauthorized, verRes2.StatusCode, verBodyStr2)
}

func TestMagicLink_UnknownEmailStillOK(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	reqBody := map[string]interface{}{"email": "nobody@test.com"}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/magic-link", "", reqBody)

	// Same answer as for a known account, so the endpoint leaks nothing.
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
}
