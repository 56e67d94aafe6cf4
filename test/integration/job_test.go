package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"crewboard_backend/internal/models"
	"crewboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJob_StartsPending(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	orgToken, _, _ := helpers.CreateAndLoginOrg(t, ts, tx)

	createBody := map[string]interface{}{
		"title":          "Surf Coach for Summer Season",
		"role":           "coach",
		"city":           "Ericeira",
		"country":        "Portugal",
		"sports":         []string{"surf"},
		"description":    "Looking for an experienced surf coach for our beachfront camp.",
		"contact_method": "email",
		"contact_value":  "hiring@camp.com",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/me/jobs", orgToken, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var job models.Job
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &job))
	assert.Equal(t, models.JobStatusPending, job.Status)

	// A pending job is invisible on the public listing.
	browseRes, browseBody := ts.SendRequest(t, "GET", "/api/v1/jobs", "", nil)
	assert.Equal(t, http.StatusOK, browseRes.StatusCode)
	assert.NotContains(t, browseBody, job.ID)
}

func TestCreateJob_PersonForbidden(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	crewToken, _ := helpers.CreateAndLoginCrew(t, ts, tx)

	createBody := map[string]interface{}{
		"title":          "Should Not Work",
		"role":           "coach",
		"description":    "A person account must not be able to post jobs.",
		"contact_method": "email",
		"contact_value":  "nope@test.com",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/me/jobs", crewToken, createBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
}

func TestModeration_ApproveMakesJobPublic(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, org := helpers.CreateAndLoginOrg(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	job := helpers.CreateJob(t, tx, org.ID, "Camp Manager Wanted", models.JobStatusPending)

	res, bodyStr := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/admin/jobs/%s/approve", job.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	browseRes, browseBody := ts.SendRequest(t, "GET", "/api/v1/jobs", "", nil)
	assert.Equal(t, http.StatusOK, browseRes.StatusCode)
	assert.Contains(t, browseBody, "Camp Manager Wanted")
}

func TestModeration_RejectIsFinalForNonPending(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, org := helpers.CreateAndLoginOrg(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	job := helpers.CreateJob(t, tx, org.ID, "Already Active", models.JobStatusActive)

	res, bodyStr := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/admin/jobs/%s/reject", job.ID), adminToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)
}

func TestModeration_NonAdminForbidden(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	orgToken, _, org := helpers.CreateAndLoginOrg(t, ts, tx)
	job := helpers.CreateJob(t, tx, org.ID, "Own Pending Job", models.JobStatusPending)

	res, bodyStr := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/admin/jobs/%s/approve", job.ID), orgToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
}

func TestUpdateActiveJob_ResetsToPending(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	orgToken, _, org := helpers.CreateAndLoginOrg(t, ts, tx)
	job := helpers.CreateJob(t, tx, org.ID, "Live Posting", models.JobStatusActive)

	updateBody := map[string]interface{}{"title": "Live Posting, Edited"}
	res, bodyStr := ts.SendRequest(t, "PATCH", fmt.Sprintf("/api/v1/me/jobs/%s", job.ID), orgToken, updateBody)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var updated models.Job
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	assert.Equal(t, models.JobStatusPending, updated.Status)
	assert.Equal(t, "Live Posting, Edited", updated.Title)
}

func TestUpdateJob_NotOwnerForbidden(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, ownerOrg := helpers.CreateAndLoginOrg(t, ts, tx)
	otherToken, _, _ := helpers.CreateAndLoginOrg(t, ts, tx)

	job := helpers.CreateJob(t, tx, ownerOrg.ID, "Someone Else's Job", models.JobStatusActive)

	updateBody := map[string]interface{}{"title": "Hijacked"}
	res, bodyStr := ts.SendRequest(t, "PATCH", fmt.Sprintf("/api/v1/me/jobs/%s", job.ID), otherToken, updateBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
}

func TestBrowseJobs_FilterByRole(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, org := helpers.CreateAndLoginOrg(t, ts, tx)

	coach := helpers.CreateJob(t, tx, org.ID, "Coach Role Here", models.JobStatusActive)
	media := helpers.CreateJob(t, tx, org.ID, "Media Role Here", models.JobStatusActive)
	require.NoError(t, tx.Model(media).Update("role", models.JobRoleMedia).Error)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs?role=media", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, media.ID)
	assert.NotContains(t, bodyStr, coach.ID)
}

func TestCloseJob(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	orgToken, _, org := helpers.CreateAndLoginOrg(t, ts, tx)
	job := helpers.CreateJob(t, tx, org.ID, "Closing Soon", models.JobStatusActive)

	res, bodyStr := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/me/jobs/%s/close", job.ID), orgToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var closed models.Job
	require.NoError(t, tx.First(&closed, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusClosed, closed.Status)
}
