package services

import (
	"encoding/json"
	"errors"

	"crewboard_backend/internal/jobfilter"
	"crewboard_backend/internal/logger"
	"crewboard_backend/internal/metrics"
	"crewboard_backend/internal/models"
	"crewboard_backend/internal/repositories"
	"crewboard_backend/internal/services/dto"
	"crewboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobService struct {
	jobRepo repositories.JobRepository
	orgRepo repositories.OrganizationRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	orgRepo repositories.OrganizationRepository,
) *JobService {
	return &JobService{
		jobRepo: jobRepo,
		orgRepo: orgRepo,
	}
}

// Browse operations

// BrowseJobs fetches the active set and narrows it with the in-memory filter
// engine. Pagination is applied to the filtered, ordered result.
func (s *JobService) BrowseJobs(db *gorm.DB, state jobfilter.State, page, pageSize int) ([]dto.JobSummary, int, error) {
	jobs, err := s.jobRepo.FindActiveJobs(db)
	if err != nil {
		return nil, 0, apperrors.PersistenceError(err)
	}

	filtered := jobfilter.Apply(jobs, state)
	total := len(filtered)

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	summaries := make([]dto.JobSummary, 0, end-start)
	for i := start; i < end; i++ {
		summary := dto.NewJobSummary(&filtered[i])
		summary.Sports = jobfilter.JobTags(&filtered[i])
		summaries = append(summaries, summary)
	}

	return summaries, total, nil
}

// GetJob returns an active job to anyone; non-active jobs are visible only to
// the owning organization and admins.
func (s *JobService) GetJob(db *gorm.DB, jobID, requesterID string, isAdmin bool) (*models.Job, error) {
	job, err := s.jobRepo.FindJobByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if job.Status == models.JobStatusActive || isAdmin {
		return job, nil
	}

	if requesterID != "" {
		org, err := s.orgRepo.FindOrganizationByOwner(db, requesterID)
		if err == nil && org.ID == job.OrganizationID {
			return job, nil
		}
	}

	return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound)
}

// Owner operations

func (s *JobService) CreateJob(db *gorm.DB, ownerProfileID string, req *dto.CreateJobRequest) (*models.Job, error) {
	org, err := s.requireOwnedOrganization(db, ownerProfileID)
	if err != nil {
		return nil, err
	}

	sportsJSON, err := json.Marshal(req.Sports)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	job := &models.Job{
		Title:            req.Title,
		Role:             models.JobRole(req.Role),
		City:             req.City,
		Country:          req.Country,
		Sports:           datatypes.JSON(sportsJSON),
		Description:      req.Description,
		CompensationType: models.CompensationType(req.CompensationType),
		Pay:              req.Pay,
		Accommodation:    models.AccommodationLevel(req.Accommodation),
		ContactMethod:    models.ContactMethod(req.ContactMethod),
		ContactValue:     req.ContactValue,
		Status:           models.JobStatusPending, // every posting goes through moderation
		OrganizationID:   org.ID,
	}
	if job.Accommodation == "" {
		job.Accommodation = models.AccommodationNo
	}

	if err := s.jobRepo.CreateJob(db, job); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	return job, nil
}

func (s *JobService) UpdateJob(db *gorm.DB, jobID, ownerProfileID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.requireOwnedJob(db, jobID, ownerProfileID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Role != nil {
		job.Role = models.JobRole(*req.Role)
	}
	if req.City != nil {
		job.City = *req.City
	}
	if req.Country != nil {
		job.Country = *req.Country
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.CompensationType != nil {
		job.CompensationType = models.CompensationType(*req.CompensationType)
	}
	if req.Pay != nil {
		job.Pay = *req.Pay
	}
	if req.Accommodation != nil {
		job.Accommodation = models.AccommodationLevel(*req.Accommodation)
	}
	if req.ContactMethod != nil {
		job.ContactMethod = models.ContactMethod(*req.ContactMethod)
	}
	if req.ContactValue != nil {
		job.ContactValue = *req.ContactValue
	}
	if req.Sports != nil {
		sportsJSON, err := json.Marshal(req.Sports)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		job.Sports = datatypes.JSON(sportsJSON)
	}

	// Edits to a live posting go back through moderation; only approved
	// content is public.
	if job.Status == models.JobStatusActive {
		job.Status = models.JobStatusPending
	}

	if err := s.jobRepo.UpdateJob(db, job); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	return job, nil
}

func (s *JobService) CloseJob(db *gorm.DB, jobID, ownerProfileID string) error {
	job, err := s.requireOwnedJob(db, jobID, ownerProfileID)
	if err != nil {
		return err
	}

	if job.Status != models.JobStatusActive {
		return apperrors.ErrJobNotActive
	}

	job.Status = models.JobStatusClosed
	if err := s.jobRepo.UpdateJob(db, job); err != nil {
		return apperrors.PersistenceError(err)
	}
	return nil
}

func (s *JobService) GetOwnJobs(db *gorm.DB, ownerProfileID string) ([]models.Job, error) {
	org, err := s.requireOwnedOrganization(db, ownerProfileID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.FindJobsByOrganization(db, org.ID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return jobs, nil
}

// Moderation operations

func (s *JobService) GetPendingJobs(db *gorm.DB) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindJobsByStatus(db, models.JobStatusPending)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return jobs, nil
}

func (s *JobService) ApproveJob(db *gorm.DB, jobID, moderatorID string) error {
	return s.moderate(db, jobID, moderatorID, models.JobStatusActive, "approved")
}

func (s *JobService) RejectJob(db *gorm.DB, jobID, moderatorID string) error {
	return s.moderate(db, jobID, moderatorID, models.JobStatusRejected, "rejected")
}

func (s *JobService) moderate(db *gorm.DB, jobID, moderatorID string, target models.JobStatus, outcome string) error {
	job, err := s.jobRepo.FindJobByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.PersistenceError(err)
	}

	if job.Status != models.JobStatusPending {
		return apperrors.ErrJobNotPending
	}

	job.Status = target
	if err := s.jobRepo.UpdateJob(db, job); err != nil {
		return apperrors.PersistenceError(err)
	}

	metrics.JobsModerated.WithLabelValues(outcome).Inc()
	logger.Info("job moderated", "job_id", jobID, "outcome", outcome, "moderator_id", moderatorID)
	return nil
}

// Helpers

func (s *JobService) requireOwnedOrganization(db *gorm.DB, ownerProfileID string) (*models.Organization, error) {
	org, err := s.orgRepo.FindOrganizationByOwner(db, ownerProfileID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, apperrors.NewForbiddenError("No organization is associated with this account")
		}
		return nil, apperrors.PersistenceError(err)
	}
	return org, nil
}

func (s *JobService) requireOwnedJob(db *gorm.DB, jobID, ownerProfileID string) (*models.Job, error) {
	job, err := s.jobRepo.FindJobByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	org, err := s.requireOwnedOrganization(db, ownerProfileID)
	if err != nil {
		return nil, err
	}

	if job.OrganizationID != org.ID {
		return nil, apperrors.ErrNotJobOwner
	}

	return job, nil
}
