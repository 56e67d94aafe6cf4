package models

import "gorm.io/datatypes"

// Job is a posting owned by exactly one Organization. It is created in
// pending status and becomes publicly visible only after moderator approval.
type Job struct {
	BaseModel
	Title            string             `gorm:"not null" json:"title"`
	Role             JobRole            `gorm:"type:varchar(16);not null;index" json:"role"`
	City             string             `json:"city"`
	Country          string             `json:"country"`
	Sports           datatypes.JSON     `gorm:"type:jsonb" json:"sports"` // e.g. ["surf","kite","wing"]
	Description      string             `gorm:"type:text" json:"description"`
	CompensationType CompensationType   `gorm:"type:varchar(16)" json:"compensation_type"`
	Pay              string             `json:"pay"` // free text
	Accommodation    AccommodationLevel `gorm:"type:varchar(8);default:'no'" json:"accommodation"`
	ContactMethod    ContactMethod      `gorm:"type:varchar(16)" json:"contact_method"`
	ContactValue     string             `json:"contact_value"`
	Status           JobStatus          `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	OrganizationID   string             `gorm:"type:uuid;not null;index" json:"organization_id"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}
