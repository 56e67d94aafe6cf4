package services

import (
	"encoding/json"
	"errors"

	"crewboard_backend/internal/models"
	"crewboard_backend/internal/repositories"
	"crewboard_backend/internal/services/dto"
	"crewboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService struct {
	profileRepo repositories.ProfileRepository
	pitchRepo   repositories.PitchRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	pitchRepo repositories.PitchRepository,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		pitchRepo:   pitchRepo,
	}
}

// GetProfile returns a profile. Private profiles are visible only to
// themselves; everyone else gets a 404 rather than a confirmation that the
// account exists.
func (s *ProfileService) GetProfile(db *gorm.DB, profileID, requesterID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindProfileByID(db, profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if !profile.IsPublic && profile.ID != requesterID {
		return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
	}

	return profile, nil
}

func (s *ProfileService) GetOwnProfile(db *gorm.DB, profileID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindProfileByID(db, profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}
	return profile, nil
}

func (s *ProfileService) UpdateProfile(db *gorm.DB, profileID string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.FindProfileByID(db, profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}
	if req.Country != nil {
		profile.Country = *req.Country
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.About != nil {
		profile.About = *req.About
	}
	if req.IsPublic != nil {
		profile.IsPublic = *req.IsPublic
	}

	if req.Skills != nil {
		skillsJSON, err := json.Marshal(req.Skills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.Skills = datatypes.JSON(skillsJSON)
	}
	if req.Links != nil {
		linksJSON, err := json.Marshal(req.Links)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.Links = datatypes.JSON(linksJSON)
	}

	if err := s.profileRepo.UpdateProfile(db, profile); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	return profile, nil
}

// Pitch operations

func (s *ProfileService) UpsertPitch(db *gorm.DB, profileID string, req *dto.UpsertPitchRequest) (*models.CandidatePitch, error) {
	profile, err := s.profileRepo.FindProfileByID(db, profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if profile.Kind != models.ProfileKindPerson {
		return nil, apperrors.ErrInvalidProfileKind
	}

	pitch := &models.CandidatePitch{
		ProfileID:        profileID,
		Headline:         req.Headline,
		Availability:     req.Availability,
		DesiredRole:      models.JobRole(req.DesiredRole),
		CompensationNote: req.CompensationNote,
		ContactMethod:    models.ContactMethod(req.ContactMethod),
		ContactValue:     req.ContactValue,
		Visible:          true,
	}
	if req.Visible != nil {
		pitch.Visible = *req.Visible
	}

	if err := s.pitchRepo.UpsertPitch(db, pitch); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	return pitch, nil
}

func (s *ProfileService) DeletePitch(db *gorm.DB, profileID string) error {
	if _, err := s.pitchRepo.FindPitchByProfile(db, profileID); err != nil {
		if errors.Is(err, repositories.ErrPitchNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.PersistenceError(err)
	}

	if err := s.pitchRepo.DeletePitch(db, profileID); err != nil {
		return apperrors.PersistenceError(err)
	}
	return nil
}

func (s *ProfileService) GetPitch(db *gorm.DB, profileID, requesterID string) (*models.CandidatePitch, error) {
	pitch, err := s.pitchRepo.FindPitchByProfile(db, profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrPitchNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if !pitch.Visible && profileID != requesterID {
		return nil, apperrors.ErrNotFound(repositories.ErrPitchNotFound)
	}

	return pitch, nil
}
