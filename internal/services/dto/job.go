package dto

import (
	"time"

	"crewboard_backend/internal/models"
)

type CreateJobRequest struct {
	Title            string   `json:"title" binding:"required" validate:"required,max=120"`
	Role             string   `json:"role" binding:"required" validate:"required,is-job-role"`
	City             string   `json:"city" validate:"max=80"`
	Country          string   `json:"country" validate:"max=60"`
	Sports           []string `json:"sports" validate:"omitempty,max=10"`
	Description      string   `json:"description" binding:"required" validate:"required,max=8000"`
	CompensationType string   `json:"compensation_type" validate:"omitempty,is-compensation-type"`
	Pay              string   `json:"pay" validate:"max=200"`
	Accommodation    string   `json:"accommodation" validate:"omitempty,is-accommodation"`
	ContactMethod    string   `json:"contact_method" binding:"required" validate:"required,is-contact-method"`
	ContactValue     string   `json:"contact_value" binding:"required" validate:"required,max=280"`
}

type UpdateJobRequest struct {
	Title            *string  `json:"title" validate:"omitempty,max=120"`
	Role             *string  `json:"role" validate:"omitempty,is-job-role"`
	City             *string  `json:"city" validate:"omitempty,max=80"`
	Country          *string  `json:"country" validate:"omitempty,max=60"`
	Sports           []string `json:"sports" validate:"omitempty,max=10"`
	Description      *string  `json:"description" validate:"omitempty,max=8000"`
	CompensationType *string  `json:"compensation_type" validate:"omitempty,is-compensation-type"`
	Pay              *string  `json:"pay" validate:"omitempty,max=200"`
	Accommodation    *string  `json:"accommodation" validate:"omitempty,is-accommodation"`
	ContactMethod    *string  `json:"contact_method" validate:"omitempty,is-contact-method"`
	ContactValue     *string  `json:"contact_value" validate:"omitempty,max=280"`
}

// JobSummary is the list-view projection of a job.
type JobSummary struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Role             string    `json:"role"`
	City             string    `json:"city"`
	Country          string    `json:"country"`
	Sports           []string  `json:"sports"`
	CompensationType string    `json:"compensation_type"`
	Pay              string    `json:"pay"`
	Accommodation    string    `json:"accommodation"`
	Status           string    `json:"status"`
	OrganizationID   string    `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	OrganizationSlug string    `json:"organization_slug"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewJobSummary(job *models.Job) JobSummary {
	s := JobSummary{
		ID:               job.ID,
		Title:            job.Title,
		Role:             string(job.Role),
		City:             job.City,
		Country:          job.Country,
		CompensationType: string(job.CompensationType),
		Pay:              job.Pay,
		Accommodation:    string(job.Accommodation),
		Status:           string(job.Status),
		OrganizationID:   job.OrganizationID,
		CreatedAt:        job.CreatedAt,
	}
	if job.Organization != nil {
		s.OrganizationName = job.Organization.Name
		s.OrganizationSlug = job.Organization.Slug
	}
	return s
}
