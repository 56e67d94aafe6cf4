package services

import (
	"errors"
	"time"

	"crewboard_backend/internal/email"
	"crewboard_backend/internal/logger"
	"crewboard_backend/internal/metrics"
	"crewboard_backend/internal/models"
	"crewboard_backend/internal/repositories"
	"crewboard_backend/internal/services/dto"
	"crewboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService struct {
	appRepo     repositories.ApplicationRepository
	jobRepo     repositories.JobRepository
	orgRepo     repositories.OrganizationRepository
	profileRepo repositories.ProfileRepository
	emailSender email.Sender
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	orgRepo repositories.OrganizationRepository,
	profileRepo repositories.ProfileRepository,
	emailSender email.Sender,
) *ApplicationService {
	return &ApplicationService{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		orgRepo:     orgRepo,
		profileRepo: profileRepo,
		emailSender: emailSender,
	}
}

// Submit creates an application for an active job. Each profile applies to a
// job at most once; a repeat submission is rejected, not overwritten.
func (s *ApplicationService) Submit(db *gorm.DB, jobID, crewID string, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	job, err := s.jobRepo.FindJobByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrJobNotActive
	}

	if job.Organization != nil && job.Organization.OwnerProfileID == crewID {
		return nil, apperrors.ErrCannotApplyToOwnJob
	}

	app := &models.Application{
		JobID:   jobID,
		CrewID:  crewID,
		Message: req.Message,
		Status:  models.ApplicationStatusPending,
	}

	if err := s.appRepo.CreateApplication(db, app); err != nil {
		if errors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.PersistenceError(err)
	}

	metrics.ApplicationsSubmitted.Inc()
	app.Job = job
	return app, nil
}

// UpdateStatus moves an application through the tracking workflow on behalf
// of the hiring organization. The first transition into viewed or contacted
// stamps the matching timestamp; later transitions leave it untouched, so the
// record keeps when each milestone first happened.
func (s *ApplicationService) UpdateStatus(db *gorm.DB, applicationID, ownerProfileID string, status models.ApplicationStatus) (*models.Application, error) {
	app, err := s.requireOwnedApplication(db, applicationID, ownerProfileID)
	if err != nil {
		return nil, err
	}

	previous := app.Status
	app.Status = status

	now := time.Now()
	if status == models.ApplicationStatusViewed && app.ViewedAt == nil {
		app.ViewedAt = &now
	}
	if status == models.ApplicationStatusContacted && app.ContactedAt == nil {
		app.ContactedAt = &now
	}

	if err := s.appRepo.UpdateApplication(db, app); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	if previous != status {
		s.notifyStatusChange(db, app)
	}

	return app, nil
}

func (s *ApplicationService) ListByCrew(db *gorm.DB, crewID string) ([]dto.CrewApplication, error) {
	apps, err := s.appRepo.FindApplicationsByCrew(db, crewID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	out := make([]dto.CrewApplication, 0, len(apps))
	for i := range apps {
		out = append(out, dto.NewCrewApplication(&apps[i]))
	}
	return out, nil
}

func (s *ApplicationService) ListByOrganization(db *gorm.DB, ownerProfileID string) ([]dto.OrgApplication, error) {
	org, err := s.orgRepo.FindOrganizationByOwner(db, ownerProfileID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, apperrors.NewForbiddenError("No organization is associated with this account")
		}
		return nil, apperrors.PersistenceError(err)
	}

	apps, err := s.appRepo.FindApplicationsByOrganization(db, org.ID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	out := make([]dto.OrgApplication, 0, len(apps))
	for i := range apps {
		out = append(out, dto.NewOrgApplication(&apps[i]))
	}
	return out, nil
}

// requireOwnedApplication resolves the application and verifies that the
// requester owns the organization behind its job. The check runs server-side
// on every call; the client is never trusted to scope its own access.
func (s *ApplicationService) requireOwnedApplication(db *gorm.DB, applicationID, ownerProfileID string) (*models.Application, error) {
	app, err := s.appRepo.FindApplicationByID(db, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if app.Job == nil {
		return nil, apperrors.PersistenceError(errors.New("application has no job"))
	}

	org, err := s.orgRepo.FindOrganizationByOwner(db, ownerProfileID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, apperrors.ErrInsufficientPermissions
		}
		return nil, apperrors.PersistenceError(err)
	}

	if app.Job.OrganizationID != org.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	return app, nil
}

// notifyStatusChange emails the applicant about the new status. Delivery is
// best effort; a failure never rolls back the status update.
func (s *ApplicationService) notifyStatusChange(db *gorm.DB, app *models.Application) {
	crew, err := s.profileRepo.FindProfileByID(db, app.CrewID)
	if err != nil {
		logger.WithError(err).Warn("skipping status notification, applicant lookup failed", "application_id", app.ID)
		return
	}

	orgName := ""
	if app.Job != nil {
		org, err := s.orgRepo.FindOrganizationByID(db, app.Job.OrganizationID)
		if err == nil {
			orgName = org.Name
		}
	}

	jobTitle := ""
	if app.Job != nil {
		jobTitle = app.Job.Title
	}

	if err := s.emailSender.SendApplicationStatus(crew.Email, crew.DisplayName, jobTitle, orgName, string(app.Status)); err != nil {
		logger.WithError(err).Error("failed to send application status email", "application_id", app.ID)
	}
}
