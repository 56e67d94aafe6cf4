package repositories

import (
	"errors"

	"crewboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrEmailTaken      = errors.New("email already registered")
)

type ProfileRepository interface {
	CreateProfile(db *gorm.DB, profile *models.Profile) error
	FindProfileByID(db *gorm.DB, id string) (*models.Profile, error)
	FindProfileByEmail(db *gorm.DB, email string) (*models.Profile, error)
	UpdateProfile(db *gorm.DB, profile *models.Profile) error
	DeleteProfile(db *gorm.DB, id string) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) CreateProfile(db *gorm.DB, profile *models.Profile) error {
	var count int64
	if err := db.Model(&models.Profile{}).Where("email = ?", profile.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}

	if err := db.Create(profile).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *ProfileRepositoryImpl) FindProfileByID(db *gorm.DB, id string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Preload("Organization").Preload("Pitch").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindProfileByEmail(db *gorm.DB, email string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Preload("Organization").First(&profile, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateProfile(db *gorm.DB, profile *models.Profile) error {
	return db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) DeleteProfile(db *gorm.DB, id string) error {
	return db.Delete(&models.Profile{}, "id = ?", id).Error
}
