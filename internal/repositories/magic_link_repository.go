package repositories

import (
	"errors"
	"time"

	"crewboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMagicLinkNotFound = errors.New("magic link token not found")

type MagicLinkRepository interface {
	CreateToken(db *gorm.DB, token *models.MagicLinkToken) error
	FindByToken(db *gorm.DB, token string) (*models.MagicLinkToken, error)
	ConsumeToken(db *gorm.DB, id string) (bool, error)
	DeleteExpired(db *gorm.DB) error
}

type MagicLinkRepositoryImpl struct{}

func NewMagicLinkRepository() MagicLinkRepository {
	return &MagicLinkRepositoryImpl{}
}

func (r *MagicLinkRepositoryImpl) CreateToken(db *gorm.DB, token *models.MagicLinkToken) error {
	return db.Create(token).Error
}

func (r *MagicLinkRepositoryImpl) FindByToken(db *gorm.DB, token string) (*models.MagicLinkToken, error) {
	var t models.MagicLinkToken
	err := db.First(&t, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMagicLinkNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ConsumeToken marks the token used. The guarded UPDATE makes consumption
// single-shot under concurrent verification attempts: only one caller sees
// consumed=true.
func (r *MagicLinkRepositoryImpl) ConsumeToken(db *gorm.DB, id string) (bool, error) {
	res := db.Model(&models.MagicLinkToken{}).
		Where("id = ? AND consumed_at IS NULL", id).
		Update("consumed_at", time.Now())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *MagicLinkRepositoryImpl) DeleteExpired(db *gorm.DB) error {
	return db.Delete(&models.MagicLinkToken{}, "expires_at < ?", time.Now()).Error
}
