package services

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"crewboard_backend/internal/models"
	"crewboard_backend/internal/repositories"
	"crewboard_backend/internal/services/dto"
	"crewboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrganizationService struct {
	orgRepo     repositories.OrganizationRepository
	profileRepo repositories.ProfileRepository
}

func NewOrganizationService(
	orgRepo repositories.OrganizationRepository,
	profileRepo repositories.ProfileRepository,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:     orgRepo,
		profileRepo: profileRepo,
	}
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify reduces a name to a URL-safe slug.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "org"
	}
	return slug
}

func (s *OrganizationService) GetBySlug(db *gorm.DB, slug string) (*models.Organization, error) {
	org, err := s.orgRepo.FindOrganizationBySlug(db, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}
	return org, nil
}

// GetOwnOrganization resolves the organization owned by the requester.
func (s *OrganizationService) GetOwnOrganization(db *gorm.DB, ownerProfileID string) (*models.Organization, error) {
	org, err := s.orgRepo.FindOrganizationByOwner(db, ownerProfileID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}
	return org, nil
}

func (s *OrganizationService) UpdateOrganization(db *gorm.DB, ownerProfileID string, req *dto.UpdateOrganizationRequest) (*models.Organization, error) {
	org, err := s.GetOwnOrganization(db, ownerProfileID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.Slug != nil {
		org.Slug = Slugify(*req.Slug)
	}
	if req.OrgType != nil {
		org.OrgType = *req.OrgType
	}
	if req.City != nil {
		org.City = *req.City
	}
	if req.Country != nil {
		org.Country = *req.Country
	}
	if req.About != nil {
		org.About = *req.About
	}
	if req.ContactEmail != nil {
		org.ContactEmail = *req.ContactEmail
	}
	if req.WhatsApp != nil {
		org.WhatsApp = *req.WhatsApp
	}
	if req.Website != nil {
		org.Website = *req.Website
	}
	if req.Instagram != nil {
		org.Instagram = *req.Instagram
	}

	if req.GalleryImages != nil {
		galleryJSON, err := json.Marshal(req.GalleryImages)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		org.GalleryImages = datatypes.JSON(galleryJSON)
	}
	if req.VideoURLs != nil {
		videosJSON, err := json.Marshal(req.VideoURLs)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		org.VideoURLs = datatypes.JSON(videosJSON)
	}

	if err := s.orgRepo.UpdateOrganization(db, org); err != nil {
		if errors.Is(err, repositories.ErrSlugTaken) {
			return nil, apperrors.ErrConflict(err, "organization", "Slug already in use")
		}
		return nil, apperrors.PersistenceError(err)
	}

	return org, nil
}
