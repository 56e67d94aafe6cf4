package services

import (
	"testing"
	"time"

	"crewboard_backend/internal/jobfilter"
	"crewboard_backend/internal/models"
	"crewboard_backend/internal/services/dto"
	"crewboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobFixture() (*JobService, map[string]*models.Job, *models.Organization) {
	org := &models.Organization{Name: "Camp", OwnerProfileID: "owner-1"}
	org.ID = "org-1"

	jobs := make(map[string]*models.Job)
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"Surf Coach", "Videographer", "Camp Cook"} {
		job := &models.Job{
			Title:          title,
			Role:           models.JobRoleCoach,
			Status:         models.JobStatusActive,
			OrganizationID: org.ID,
			Organization:   org,
		}
		job.ID = title
		job.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		jobs[job.ID] = job
	}

	svc := NewJobService(
		&fakeJobRepo{jobs: jobs},
		&fakeOrgRepo{orgs: map[string]*models.Organization{"owner-1": org}},
	)
	return svc, jobs, org
}

func TestBrowseJobs_NewestFirstAndPaginated(t *testing.T) {
	svc, _, _ := newJobFixture()

	page1, total, err := svc.BrowseJobs(nil, jobfilter.DefaultState(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page1, 2)
	assert.Equal(t, "Camp Cook", page1[0].Title)
	assert.Equal(t, "Videographer", page1[1].Title)

	page2, _, err := svc.BrowseJobs(nil, jobfilter.DefaultState(), 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "Surf Coach", page2[0].Title)
}

func TestBrowseJobs_PageBeyondEnd(t *testing.T) {
	svc, _, _ := newJobFixture()

	page, total, err := svc.BrowseJobs(nil, jobfilter.DefaultState(), 5, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, page)
}

func TestBrowseJobs_SearchNarrows(t *testing.T) {
	svc, _, _ := newJobFixture()

	state := jobfilter.DefaultState()
	state.Search = "videog"

	page, total, err := svc.BrowseJobs(nil, state, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, page, 1)
	assert.Equal(t, "Videographer", page[0].Title)
}

func TestGetJob_PendingHiddenFromPublic(t *testing.T) {
	svc, jobs, _ := newJobFixture()
	jobs["Surf Coach"].Status = models.JobStatusPending

	_, err := svc.GetJob(nil, "Surf Coach", "", false)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGetJob_PendingVisibleToOwnerAndAdmin(t *testing.T) {
	svc, jobs, _ := newJobFixture()
	jobs["Surf Coach"].Status = models.JobStatusPending

	job, err := svc.GetJob(nil, "Surf Coach", "owner-1", false)
	require.NoError(t, err)
	assert.Equal(t, "Surf Coach", job.Title)

	job, err = svc.GetJob(nil, "Surf Coach", "", true)
	require.NoError(t, err)
	assert.Equal(t, "Surf Coach", job.Title)
}

func TestCreateJob_WithoutOrganizationForbidden(t *testing.T) {
	svc, _, _ := newJobFixture()

	req := &dto.CreateJobRequest{
		Title:         "New Job",
		Role:          "coach",
		Description:   "desc",
		ContactMethod: "email",
		ContactValue:  "a@b.com",
	}
	_, err := svc.CreateJob(nil, "no-org-profile", req)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestModerate_NonPendingRejected(t *testing.T) {
	svc, _, _ := newJobFixture()

	err := svc.ApproveJob(nil, "Surf Coach", "admin-1")
	assert.ErrorIs(t, err, apperrors.ErrJobNotPending)
}

func TestCloseJob_OnlyActive(t *testing.T) {
	svc, jobs, _ := newJobFixture()
	jobs["Surf Coach"].Status = models.JobStatusRejected

	err := svc.CloseJob(nil, "Surf Coach", "owner-1")
	assert.ErrorIs(t, err, apperrors.ErrJobNotActive)
}
