package repositories

import (
	"errors"

	"crewboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrSlugTaken            = errors.New("organization slug already in use")
)

type OrganizationRepository interface {
	CreateOrganization(db *gorm.DB, org *models.Organization) error
	FindOrganizationByID(db *gorm.DB, id string) (*models.Organization, error)
	FindOrganizationBySlug(db *gorm.DB, slug string) (*models.Organization, error)
	FindOrganizationByOwner(db *gorm.DB, ownerProfileID string) (*models.Organization, error)
	UpdateOrganization(db *gorm.DB, org *models.Organization) error
}

type OrganizationRepositoryImpl struct{}

func NewOrganizationRepository() OrganizationRepository {
	return &OrganizationRepositoryImpl{}
}

func (r *OrganizationRepositoryImpl) CreateOrganization(db *gorm.DB, org *models.Organization) error {
	if err := db.Create(org).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}

func (r *OrganizationRepositoryImpl) FindOrganizationByID(db *gorm.DB, id string) (*models.Organization, error) {
	var org models.Organization
	err := db.First(&org, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepositoryImpl) FindOrganizationBySlug(db *gorm.DB, slug string) (*models.Organization, error) {
	var org models.Organization
	err := db.Preload("Owner").First(&org, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepositoryImpl) FindOrganizationByOwner(db *gorm.DB, ownerProfileID string) (*models.Organization, error) {
	var org models.Organization
	err := db.First(&org, "owner_profile_id = ?", ownerProfileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepositoryImpl) UpdateOrganization(db *gorm.DB, org *models.Organization) error {
	if err := db.Save(org).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}
