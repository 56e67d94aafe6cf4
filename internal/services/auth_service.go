package services

import (
	"errors"
	"fmt"
	"time"

	"crewboard_backend/internal/auth"
	"crewboard_backend/internal/config"
	"crewboard_backend/internal/email"
	"crewboard_backend/internal/logger"
	"crewboard_backend/internal/metrics"
	"crewboard_backend/internal/models"
	"crewboard_backend/internal/repositories"
	"crewboard_backend/internal/services/dto"
	"crewboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService struct {
	profileRepo   repositories.ProfileRepository
	orgRepo       repositories.OrganizationRepository
	magicLinkRepo repositories.MagicLinkRepository
	emailSender   email.Sender
}

func NewAuthService(
	profileRepo repositories.ProfileRepository,
	orgRepo repositories.OrganizationRepository,
	magicLinkRepo repositories.MagicLinkRepository,
	emailSender email.Sender,
) *AuthService {
	return &AuthService{
		profileRepo:   profileRepo,
		orgRepo:       orgRepo,
		magicLinkRepo: magicLinkRepo,
		emailSender:   emailSender,
	}
}

func (s *AuthService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	kind := models.ProfileKind(req.Kind)
	if kind == models.ProfileKindOrg && req.OrgName == "" {
		return nil, apperrors.ValidationError(map[string]string{
			"org_name": "Organization name is required for org accounts",
		})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile := &models.Profile{
		Kind:         kind,
		Email:        req.Email,
		PasswordHash: &hash,
		DisplayName:  req.DisplayName,
	}
	if profile.DisplayName == "" {
		profile.DisplayName = req.OrgName
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.profileRepo.CreateProfile(tx, profile); err != nil {
			if errors.Is(err, repositories.ErrEmailTaken) {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.PersistenceError(err)
		}

		if kind == models.ProfileKindOrg {
			org := &models.Organization{
				Name:           req.OrgName,
				Slug:           Slugify(req.OrgName),
				OwnerProfileID: profile.ID,
			}
			if err := s.orgRepo.CreateOrganization(tx, org); err != nil {
				if errors.Is(err, repositories.ErrSlugTaken) {
					// Disambiguate with a short id suffix rather than failing
					// the whole registration.
					org.Slug = fmt.Sprintf("%s-%s", org.Slug, profile.ID[:8])
					return s.orgRepo.CreateOrganization(tx, org)
				}
				return apperrors.PersistenceError(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.buildAuthResponse(db, profile.ID)
}

func (s *AuthService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	profile, err := s.profileRepo.FindProfileByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.PersistenceError(err)
	}

	if profile.PasswordHash == nil || !auth.CheckPasswordHash(req.Password, *profile.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(profile)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{AccessToken: token, Profile: profile}, nil
}

// RequestMagicLink issues a single-use sign-in token and emails it. The
// response is identical whether or not an account exists, so the endpoint
// cannot be used to enumerate accounts.
func (s *AuthService) RequestMagicLink(db *gorm.DB, emailAddr string) error {
	_, err := s.profileRepo.FindProfileByEmail(db, emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			logger.Info("magic link requested for unknown email", "email", emailAddr)
			return nil
		}
		return apperrors.PersistenceError(err)
	}

	cfg := config.GetConfig()

	tokenStr, err := auth.GenerateMagicToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	token := &models.MagicLinkToken{
		Token:     tokenStr,
		Email:     emailAddr,
		ExpiresAt: time.Now().Add(time.Duration(cfg.MagicLink.TTLMinutes) * time.Minute),
	}
	if err := s.magicLinkRepo.CreateToken(db, token); err != nil {
		return apperrors.PersistenceError(err)
	}

	metrics.MagicLinksIssued.Inc()

	actionURL := fmt.Sprintf("%s?token=%s", cfg.MagicLink.BaseURL, tokenStr)
	if err := s.emailSender.SendMagicLink(emailAddr, actionURL, cfg.MagicLink.TTLMinutes); err != nil {
		// Delivery failure is logged but not exposed; the caller cannot tell
		// accounts apart by it.
		logger.WithError(err).Error("failed to send magic link email", "email", emailAddr)
	}

	return nil
}

func (s *AuthService) VerifyMagicLink(db *gorm.DB, tokenStr string) (*dto.AuthResponse, error) {
	token, err := s.magicLinkRepo.FindByToken(db, tokenStr)
	if err != nil {
		if errors.Is(err, repositories.ErrMagicLinkNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.PersistenceError(err)
	}

	if token.ConsumedAt != nil {
		return nil, apperrors.ErrMagicLinkConsumed
	}
	if time.Now().After(token.ExpiresAt) {
		return nil, apperrors.ErrInvalidToken
	}

	consumed, err := s.magicLinkRepo.ConsumeToken(db, token.ID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	if !consumed {
		// Lost the race against a concurrent verification of the same token.
		return nil, apperrors.ErrMagicLinkConsumed
	}

	profile, err := s.profileRepo.FindProfileByEmail(db, token.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.PersistenceError(err)
	}

	accessToken, err := auth.GenerateToken(profile)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{AccessToken: accessToken, Profile: profile}, nil
}

func (s *AuthService) buildAuthResponse(db *gorm.DB, profileID string) (*dto.AuthResponse, error) {
	profile, err := s.profileRepo.FindProfileByID(db, profileID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	token, err := auth.GenerateToken(profile)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{AccessToken: token, Profile: profile}, nil
}
