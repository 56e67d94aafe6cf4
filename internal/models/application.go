package models

import "time"

// Application is a crew member's application to a Job. The unique index on
// (job_id, crew_id) makes concurrent duplicate submissions fail at the store.
// ViewedAt and ContactedAt are stamped once, on the first transition into the
// matching status, and never overwritten.
type Application struct {
	BaseModel
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_crew" json:"job_id"`
	CrewID      string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_crew" json:"crew_id"`
	Message     string            `gorm:"type:text;not null" json:"message"`
	Status      ApplicationStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	ViewedAt    *time.Time        `json:"viewed_at"`
	ContactedAt *time.Time        `json:"contacted_at"`

	Job  *Job     `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Crew *Profile `gorm:"foreignKey:CrewID" json:"crew,omitempty"`
}
