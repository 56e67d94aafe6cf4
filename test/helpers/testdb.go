package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"crewboard_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateProfile inserts a profile directly in the test transaction, hashing
// the raw password passed in PasswordHash.
func CreateProfile(t *testing.T, tx *gorm.DB, profile *models.Profile, rawPassword string) {
	if rawPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
		require.NoError(t, err, "failed to hash test password")
		hash := string(hashed)
		profile.PasswordHash = &hash
	}

	require.NoError(t, tx.Create(profile).Error, "failed to create test profile %s", profile.Email)
}

// CreateAndLoginProfile creates a profile and logs it in via the API,
// returning the access token.
func CreateAndLoginProfile(t *testing.T, ts *TestServer, tx *gorm.DB, kind models.ProfileKind, email, password string) (string, *models.Profile) {
	profile := &models.Profile{
		Kind:        kind,
		Email:       email,
		DisplayName: "Test " + string(kind),
	}
	CreateProfile(t, tx, profile, password)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, profile
}

// CreateAndLoginCrew creates a person-kind profile with a unique email.
func CreateAndLoginCrew(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.Profile) {
	email := fmt.Sprintf("crew_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginProfile(t, ts, tx, models.ProfileKindPerson, email, "password123")
}

// CreateAndLoginOrg creates an org-kind profile plus its organization.
func CreateAndLoginOrg(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.Profile, *models.Organization) {
	email := fmt.Sprintf("org_%d@test.com", time.Now().UnixNano())
	token, profile := CreateAndLoginProfile(t, ts, tx, models.ProfileKindOrg, email, "password123")

	org := &models.Organization{
		Name:           "Test Surf Camp",
		Slug:           fmt.Sprintf("test-surf-camp-%d", time.Now().UnixNano()),
		OwnerProfileID: profile.ID,
	}
	require.NoError(t, tx.Create(org).Error, "failed to create test organization")

	return token, profile, org
}

// CreateAndLoginAdmin creates an admin profile with a unique email.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.Profile) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	profile := &models.Profile{
		Kind:        models.ProfileKindPerson,
		Email:       email,
		DisplayName: "Test Admin",
		IsAdmin:     true,
	}
	CreateProfile(t, tx, profile, "password123")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "password123",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "admin login should succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))

	return loginResponse.Token, profile
}

// CreateJob inserts a job directly in the test transaction.
func CreateJob(t *testing.T, tx *gorm.DB, orgID, title string, status models.JobStatus) *models.Job {
	job := &models.Job{
		Title:          title,
		Role:           models.JobRoleCoach,
		City:           "Ericeira",
		Country:        "Portugal",
		Description:    "Test description for a coaching position by the ocean.",
		ContactMethod:  models.ContactMethodEmail,
		ContactValue:   "jobs@test.com",
		Status:         status,
		OrganizationID: orgID,
	}
	require.NoError(t, tx.Create(job).Error, "failed to create test job")
	return job
}
