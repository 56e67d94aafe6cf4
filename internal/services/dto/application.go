package dto

import (
	"time"

	"crewboard_backend/internal/models"
)

type SubmitApplicationRequest struct {
	Message string `json:"message" binding:"required" validate:"required,min=50,max=500"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required" validate:"required,is-application-status"`
}

// CrewApplication is an application as seen by the applicant, joined with the
// job and its organization.
type CrewApplication struct {
	ID               string     `json:"id"`
	Status           string     `json:"status"`
	Message          string     `json:"message"`
	ViewedAt         *time.Time `json:"viewed_at"`
	ContactedAt      *time.Time `json:"contacted_at"`
	CreatedAt        time.Time  `json:"created_at"`
	Job              JobSummary `json:"job"`
}

// OrgApplication is an application as seen by the hiring organization, joined
// with the job and the applicant profile.
type OrgApplication struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	Message     string     `json:"message"`
	ViewedAt    *time.Time `json:"viewed_at"`
	ContactedAt *time.Time `json:"contacted_at"`
	CreatedAt   time.Time  `json:"created_at"`
	JobID       string     `json:"job_id"`
	JobTitle    string     `json:"job_title"`
	Crew        *models.Profile `json:"crew"`
}

func NewCrewApplication(app *models.Application) CrewApplication {
	out := CrewApplication{
		ID:          app.ID,
		Status:      string(app.Status),
		Message:     app.Message,
		ViewedAt:    app.ViewedAt,
		ContactedAt: app.ContactedAt,
		CreatedAt:   app.CreatedAt,
	}
	if app.Job != nil {
		out.Job = NewJobSummary(app.Job)
	}
	return out
}

func NewOrgApplication(app *models.Application) OrgApplication {
	out := OrgApplication{
		ID:          app.ID,
		Status:      string(app.Status),
		Message:     app.Message,
		ViewedAt:    app.ViewedAt,
		ContactedAt: app.ContactedAt,
		CreatedAt:   app.CreatedAt,
		JobID:       app.JobID,
		Crew:        app.Crew,
	}
	if app.Job != nil {
		out.JobTitle = app.Job.Title
	}
	return out
}
