package repositories

import (
	"errors"

	"crewboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists for this job and profile")
)

type ApplicationRepository interface {
	CreateApplication(db *gorm.DB, app *models.Application) error
	FindApplicationByID(db *gorm.DB, id string) (*models.Application, error)
	UpdateApplication(db *gorm.DB, app *models.Application) error
	FindApplicationsByCrew(db *gorm.DB, crewID string) ([]models.Application, error)
	FindApplicationsByOrganization(db *gorm.DB, organizationID string) ([]models.Application, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

// CreateApplication relies on the unique index on (job_id, crew_id): under
// concurrent duplicate submission the second writer gets a uniqueness
// violation from the store, never a silent overwrite.
func (r *ApplicationRepositoryImpl) CreateApplication(db *gorm.DB, app *models.Application) error {
	if err := db.Create(app).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindApplicationByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	err := db.Preload("Job").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) UpdateApplication(db *gorm.DB, app *models.Application) error {
	return db.Save(app).Error
}

func (r *ApplicationRepositoryImpl) FindApplicationsByCrew(db *gorm.DB, crewID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Job").Preload("Job.Organization").
		Where("crew_id = ?", crewID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

// FindApplicationsByOrganization returns applications across all jobs owned
// by the organization, joined with the job and the applicant profile.
func (r *ApplicationRepositoryImpl) FindApplicationsByOrganization(db *gorm.DB, organizationID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Job").Preload("Crew").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.organization_id = ?", organizationID).
		Order("applications.created_at DESC").
		Find(&apps).Error
	return apps, err
}
