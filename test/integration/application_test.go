package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"crewboard_backend/internal/models"
	"crewboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var applicationMessage = strings.Repeat("I would love to join your team. ", 3)

func submitApplication(t *testing.T, ts *helpers.TestServer, token, jobID string) (*http.Response, string) {
	body := map[string]interface{}{"message": applicationMessage}
	return ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/jobs/%s/applications", jobID), token, body)
}

func TestSubmitApplication_Success(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, org := helpers.CreateAndLoginOrg(t, ts, tx)
	crewToken, _ := helpers.CreateAndLoginCrew(t, ts, tx)
	job := helpers.CreateJob(t, tx, org.ID, "Open Position", models.JobStatusActive)

	res, bodyStr := submitApplication(t, ts, crewToken, job.ID)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var app models.Application
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &app))
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Nil(t, app.ViewedAt)
	assert.Nil(t, app.ContactedAt)
}

func TestSubmitApplication_DuplicateRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, org := helpers.CreateAndLoginOrg(t, ts, tx)
	crewToken, _ := helpers.CreateAndLoginCrew(t, ts, tx)
	job := helpers.CreateJob(t, tx, org.ID, "One Shot Only", models.JobStatusActive)

	res, bodyStr := submitApplication(t, ts, crewToken, job.ID)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res2, bodyStr2 := submitApplication(t, ts, crewToken, job.ID)
	assert.Equal(t, http.StatusConflict, res2.StatusCode, bodyStr2)
	assert.Contains(t, bodyStr2, "already applied")
}

func TestSubmitApplication_InactiveJobRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, org := helpers.CreateAndLoginOrg(t, ts, tx)
	crewToken, _ := helpers.CreateAndLoginCrew(t, ts, tx)
	job := helpers.CreateJob(t, tx, org.ID, "Closed Position", models.JobStatusClosed)

	res, bodyStr := submitApplication(t, ts, crewToken, job.ID)
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)
}

func TestSubmitApplication_MessageTooShort(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, org := helpers.CreateAndLoginOrg(t, ts, tx)
	crewToken, _ := helpers.CreateAndLoginCrew(t, ts, tx)
	job := helpers.CreateJob(t, tx, org.ID, "Needs Long Message", models.JobStatusActive)

	body := map[string]interface{}{"message": "hi"}
	res, bodyStr := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/jobs/%s/applications", job.ID), crewToken, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)

	// Validation failed before any write happened.
	var count int64
	require.NoError(t, tx.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateStatus_StampsViewedOnce(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	orgToken, _, org := helpers.CreateAndLoginOrg(t, ts, tx)
	crewToken, _ := helpers.CreateAndLoginCrew(t, ts, tx)
	job := helpers.CreateJob(t, tx, org.ID, "Tracked Position", models.JobStatusActive)

	res, bodyStr := submitApplication(t, ts, crewToken, job.ID)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	var app models.Application
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &app))

	statusURL := fmt.Sprintf("/api/v1/applications/%s/status", app.ID)

	// pending -> viewed stamps viewed_at
	res, bodyStr = ts.SendRequest(t, "PATCH", statusURL, orgToken, map[string]interface{}{"status": "viewed"})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	var viewed models.Application
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &viewed))
	require.NotNil(t, viewed.ViewedAt)
	firstViewedAt := *viewed.ViewedAt

	// viewed -> archived -> viewed again keeps the original stamp
	res, bodyStr = ts.SendRequest(t, "PATCH", statusURL, orgToken, map[string]interface{}{"status": "archived"})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, "PATCH", statusURL, orgToken, map[string]interface{}{"status": "viewed"})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	var reviewed models.Application
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &reviewed))
	require.NotNil(t, reviewed.ViewedAt)
	assert.True(t, reviewed.ViewedAt.Equal(firstViewedAt), "viewed_at must not move on repeat transitions")
}

func TestUpdateStatus_ContactedStamp(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	orgToken, _, org := helpers.CreateAndLoginOrg(t, ts, tx)
	crewToken, _ := helpers.CreateAndLoginCrew(t, ts, tx)
	job := helpers.CreateJob(t, tx, org.ID, "Fast Track", models.JobStatusActive)

	res, bodyStr := submitApplication(t, ts, crewToken, job.ID)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	var app models.Application
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &app))

	// Jumping straight from pending to contacted is allowed; only the
	// contacted stamp is set.
	res, bodyStr = ts.SendRequest(t, "PATCH", fmt.Sprintf("/api/v1/applications/%s/status", app.ID), orgToken, map[string]interface{}{"status": "contacted"})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	var contacted models.Application
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &contacted))
	assert.NotNil(t, contacted.ContactedAt)
	assert.Nil(t, contacted.ViewedAt)
}

func TestUpdateStatus_OtherOrgForbidden(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, org := helpers.CreateAndLoginOrg(t, ts, tx)
	otherOrgToken, _, _ := helpers.CreateAndLoginOrg(t, ts, tx)
	crewToken, _ := helpers.CreateAndLoginCrew(t, ts, tx)
	job := helpers.CreateJob(t, tx, org.ID, "Guarded Position", models.JobStatusActive)

	res, bodyStr := submitApplication(t, ts, crewToken, job.ID)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	var app models.Application
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &app))

	res, bodyStr = ts.SendRequest(t, "PATCH", fmt.Sprintf("/api/v1/applications/%s/status", app.ID), otherOrgToken, map[string]interface{}{"status": "viewed"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
}

func TestListApplications_ByCrewAndByOrg(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	orgToken, _, org := helpers.CreateAndLoginOrg(t, ts, tx)
	crewToken, _ := helpers.CreateAndLoginCrew(t, ts, tx)
	job := helpers.CreateJob(t, tx, org.ID, "Listed Position", models.JobStatusActive)

	res, bodyStr := submitApplication(t, ts, crewToken, job.ID)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	crewRes, crewBody := ts.SendRequest(t, "GET", "/api/v1/me/applications", crewToken, nil)
	require.Equal(t, http.StatusOK, crewRes.StatusCode, crewBody)
	assert.Contains(t, crewBody, "Listed Position")

	orgRes, orgBody := ts.SendRequest(t, "GET", "/api/v1/me/organization/applications", orgToken, nil)
	require.Equal(t, http.StatusOK, orgRes.StatusCode, orgBody)
	assert.Contains(t, orgBody, applicationMessage)
}
