package repositories

import (
	"errors"

	"crewboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	CreateJob(db *gorm.DB, job *models.Job) error
	FindJobByID(db *gorm.DB, id string) (*models.Job, error)
	UpdateJob(db *gorm.DB, job *models.Job) error
	DeleteJob(db *gorm.DB, id string) error
	FindActiveJobs(db *gorm.DB) ([]models.Job, error)
	FindJobsByOrganization(db *gorm.DB, organizationID string) ([]models.Job, error)
	FindJobsByStatus(db *gorm.DB, status models.JobStatus) ([]models.Job, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) CreateJob(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindJobByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Organization").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) UpdateJob(db *gorm.DB, job *models.Job) error {
	return db.Save(job).Error
}

func (r *JobRepositoryImpl) DeleteJob(db *gorm.DB, id string) error {
	return db.Delete(&models.Job{}, "id = ?", id).Error
}

// FindActiveJobs returns the full active set, newest first. The in-memory
// filter engine narrows and re-orders it per request.
func (r *JobRepositoryImpl) FindActiveJobs(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Organization").
		Where("status = ?", models.JobStatusActive).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindJobsByOrganization(db *gorm.DB, organizationID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindJobsByStatus(db *gorm.DB, status models.JobStatus) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Organization").
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&jobs).Error
	return jobs, err
}
