package services

import (
	"testing"
	"time"

	"crewboard_backend/internal/email"
	"crewboard_backend/internal/models"
	"crewboard_backend/internal/repositories"
	"crewboard_backend/internal/services/dto"
	"crewboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// In-memory fakes for the repository interfaces. The db argument is ignored.

type fakeApplicationRepo struct {
	apps   map[string]*models.Application
	jobs   map[string]*models.Job
	nextID int
}

func newFakeApplicationRepo(jobs map[string]*models.Job) *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]*models.Application), jobs: jobs}
}

func (r *fakeApplicationRepo) CreateApplication(_ *gorm.DB, app *models.Application) error {
	for _, existing := range r.apps {
		if existing.JobID == app.JobID && existing.CrewID == app.CrewID {
			return repositories.ErrApplicationAlreadyExists
		}
	}
	r.nextID++
	app.ID = string(rune('a' + r.nextID))
	app.CreatedAt = time.Now()
	clone := *app
	r.apps[app.ID] = &clone
	return nil
}

func (r *fakeApplicationRepo) FindApplicationByID(_ *gorm.DB, id string) (*models.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	clone := *app
	clone.Job = r.jobs[clone.JobID]
	return &clone, nil
}

func (r *fakeApplicationRepo) UpdateApplication(_ *gorm.DB, app *models.Application) error {
	clone := *app
	r.apps[app.ID] = &clone
	return nil
}

func (r *fakeApplicationRepo) FindApplicationsByCrew(_ *gorm.DB, crewID string) ([]models.Application, error) {
	var out []models.Application
	for _, app := range r.apps {
		if app.CrewID == crewID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindApplicationsByOrganization(_ *gorm.DB, _ string) ([]models.Application, error) {
	var out []models.Application
	for _, app := range r.apps {
		out = append(out, *app)
	}
	return out, nil
}

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func (r *fakeJobRepo) CreateJob(_ *gorm.DB, job *models.Job) error { return nil }
func (r *fakeJobRepo) FindJobByID(_ *gorm.DB, id string) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	return job, nil
}
func (r *fakeJobRepo) UpdateJob(_ *gorm.DB, job *models.Job) error { return nil }
func (r *fakeJobRepo) DeleteJob(_ *gorm.DB, id string) error       { return nil }
func (r *fakeJobRepo) FindActiveJobs(_ *gorm.DB) ([]models.Job, error) {
	var out []models.Job
	for _, job := range r.jobs {
		if job.Status == models.JobStatusActive {
			out = append(out, *job)
		}
	}
	return out, nil
}
func (r *fakeJobRepo) FindJobsByOrganization(_ *gorm.DB, _ string) ([]models.Job, error) {
	return nil, nil
}
func (r *fakeJobRepo) FindJobsByStatus(_ *gorm.DB, _ models.JobStatus) ([]models.Job, error) {
	return nil, nil
}

type fakeOrgRepo struct {
	orgs map[string]*models.Organization // keyed by owner profile id
}

func (r *fakeOrgRepo) CreateOrganization(_ *gorm.DB, _ *models.Organization) error { return nil }
func (r *fakeOrgRepo) FindOrganizationByID(_ *gorm.DB, id string) (*models.Organization, error) {
	for _, org := range r.orgs {
		if org.ID == id {
			return org, nil
		}
	}
	return nil, repositories.ErrOrganizationNotFound
}
func (r *fakeOrgRepo) FindOrganizationBySlug(_ *gorm.DB, _ string) (*models.Organization, error) {
	return nil, repositories.ErrOrganizationNotFound
}
func (r *fakeOrgRepo) FindOrganizationByOwner(_ *gorm.DB, ownerID string) (*models.Organization, error) {
	org, ok := r.orgs[ownerID]
	if !ok {
		return nil, repositories.ErrOrganizationNotFound
	}
	return org, nil
}
func (r *fakeOrgRepo) UpdateOrganization(_ *gorm.DB, _ *models.Organization) error { return nil }

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func (r *fakeProfileRepo) CreateProfile(_ *gorm.DB, _ *models.Profile) error { return nil }
func (r *fakeProfileRepo) FindProfileByID(_ *gorm.DB, id string) (*models.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return p, nil
}
func (r *fakeProfileRepo) FindProfileByEmail(_ *gorm.DB, _ string) (*models.Profile, error) {
	return nil, repositories.ErrProfileNotFound
}
func (r *fakeProfileRepo) UpdateProfile(_ *gorm.DB, _ *models.Profile) error { return nil }
func (r *fakeProfileRepo) DeleteProfile(_ *gorm.DB, _ string) error          { return nil }

// Fixture: an organization with one active job, and a crew profile.

type applicationFixture struct {
	svc     *ApplicationService
	appRepo *fakeApplicationRepo
	job     *models.Job
	ownerID string
	crewID  string
}

func newApplicationFixture() *applicationFixture {
	ownerID := "owner-1"
	crewID := "crew-1"

	org := &models.Organization{Name: "Camp", OwnerProfileID: ownerID}
	org.ID = "org-1"

	job := &models.Job{
		Title:          "Surf Coach",
		Status:         models.JobStatusActive,
		OrganizationID: org.ID,
		Organization:   org,
	}
	job.ID = "job-1"

	crew := &models.Profile{Kind: models.ProfileKindPerson, Email: "crew@test.com", DisplayName: "Crew"}
	crew.ID = crewID

	jobs := map[string]*models.Job{job.ID: job}
	appRepo := newFakeApplicationRepo(jobs)
	svc := NewApplicationService(
		appRepo,
		&fakeJobRepo{jobs: jobs},
		&fakeOrgRepo{orgs: map[string]*models.Organization{ownerID: org}},
		&fakeProfileRepo{profiles: map[string]*models.Profile{crewID: crew}},
		&email.LogSender{},
	)

	return &applicationFixture{svc: svc, appRepo: appRepo, job: job, ownerID: ownerID, crewID: crewID}
}

func validMessage() *dto.SubmitApplicationRequest {
	return &dto.SubmitApplicationRequest{
		Message: "I have five seasons of coaching experience and would love to join your camp.",
	}
}

func TestSubmit_CreatesPendingApplication(t *testing.T) {
	f := newApplicationFixture()

	app, err := f.svc.Submit(nil, f.job.ID, f.crewID, validMessage())
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Nil(t, app.ViewedAt)
	assert.Nil(t, app.ContactedAt)
}

func TestSubmit_DuplicateReturnsConflict(t *testing.T) {
	f := newApplicationFixture()

	_, err := f.svc.Submit(nil, f.job.ID, f.crewID, validMessage())
	require.NoError(t, err)

	_, err = f.svc.Submit(nil, f.job.ID, f.crewID, validMessage())
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
}

func TestSubmit_InactiveJobRejected(t *testing.T) {
	f := newApplicationFixture()
	f.job.Status = models.JobStatusClosed

	_, err := f.svc.Submit(nil, f.job.ID, f.crewID, validMessage())
	assert.ErrorIs(t, err, apperrors.ErrJobNotActive)
}

func TestSubmit_OwnJobRejected(t *testing.T) {
	f := newApplicationFixture()

	_, err := f.svc.Submit(nil, f.job.ID, f.ownerID, validMessage())
	assert.ErrorIs(t, err, apperrors.ErrCannotApplyToOwnJob)
}

func TestUpdateStatus_SetsViewedAtOnce(t *testing.T) {
	f := newApplicationFixture()

	app, err := f.svc.Submit(nil, f.job.ID, f.crewID, validMessage())
	require.NoError(t, err)

	viewed, err := f.svc.UpdateStatus(nil, app.ID, f.ownerID, models.ApplicationStatusViewed)
	require.NoError(t, err)
	require.NotNil(t, viewed.ViewedAt)
	first := *viewed.ViewedAt

	_, err = f.svc.UpdateStatus(nil, app.ID, f.ownerID, models.ApplicationStatusArchived)
	require.NoError(t, err)

	again, err := f.svc.UpdateStatus(nil, app.ID, f.ownerID, models.ApplicationStatusViewed)
	require.NoError(t, err)
	require.NotNil(t, again.ViewedAt)
	assert.True(t, again.ViewedAt.Equal(first), "viewed_at must be stamped only once")
}

func TestUpdateStatus_ContactedWithoutViewed(t *testing.T) {
	f := newApplicationFixture()

	app, err := f.svc.Submit(nil, f.job.ID, f.crewID, validMessage())
	require.NoError(t, err)

	contacted, err := f.svc.UpdateStatus(nil, app.ID, f.ownerID, models.ApplicationStatusContacted)
	require.NoError(t, err)
	assert.NotNil(t, contacted.ContactedAt)
	assert.Nil(t, contacted.ViewedAt)
}

func TestUpdateStatus_NotOwnerForbidden(t *testing.T) {
	f := newApplicationFixture()

	app, err := f.svc.Submit(nil, f.job.ID, f.crewID, validMessage())
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(nil, app.ID, "someone-else", models.ApplicationStatusViewed)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestUpdateStatus_UnknownApplication(t *testing.T) {
	f := newApplicationFixture()

	_, err := f.svc.UpdateStatus(nil, "missing", f.ownerID, models.ApplicationStatusViewed)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
