package repositories

import (
	"errors"

	"crewboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPitchNotFound = errors.New("pitch not found")

type PitchRepository interface {
	UpsertPitch(db *gorm.DB, pitch *models.CandidatePitch) error
	FindPitchByProfile(db *gorm.DB, profileID string) (*models.CandidatePitch, error)
	DeletePitch(db *gorm.DB, profileID string) error
}

type PitchRepositoryImpl struct{}

func NewPitchRepository() PitchRepository {
	return &PitchRepositoryImpl{}
}

func (r *PitchRepositoryImpl) UpsertPitch(db *gorm.DB, pitch *models.CandidatePitch) error {
	var existing models.CandidatePitch
	err := db.First(&existing, "profile_id = ?", pitch.ProfileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return db.Create(pitch).Error
		}
		return err
	}

	pitch.ID = existing.ID
	pitch.CreatedAt = existing.CreatedAt
	return db.Save(pitch).Error
}

func (r *PitchRepositoryImpl) FindPitchByProfile(db *gorm.DB, profileID string) (*models.CandidatePitch, error) {
	var pitch models.CandidatePitch
	err := db.First(&pitch, "profile_id = ?", profileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPitchNotFound
		}
		return nil, err
	}
	return &pitch, nil
}

func (r *PitchRepositoryImpl) DeletePitch(db *gorm.DB, profileID string) error {
	return db.Delete(&models.CandidatePitch{}, "profile_id = ?", profileID).Error
}
