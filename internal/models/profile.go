package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is the root identity entity. A person-kind profile is a crew member
// (job seeker); an org-kind profile owns an Organization.
type Profile struct {
	BaseModel
	Kind         ProfileKind `gorm:"type:varchar(16);not null" json:"kind"`
	Email        string      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash *string     `gorm:"type:varchar(128)" json:"-"` // nil for magic-link-only accounts
	DisplayName  string      `json:"display_name"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	AvatarURL    string      `json:"avatar_url"`
	Country      string      `json:"country"`
	Bio          string      `json:"bio"`
	About        string      `gorm:"type:text" json:"about"`
	Skills       datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Links        datatypes.JSON `gorm:"type:jsonb" json:"links"`
	IsPublic     bool        `gorm:"default:true" json:"is_public"`
	IsAdmin      bool        `gorm:"default:false" json:"is_admin"`
	VerifiedAt   *time.Time  `json:"verified_at"`

	Organization *Organization   `gorm:"foreignKey:OwnerProfileID" json:"organization,omitempty"`
	Pitch        *CandidatePitch `gorm:"foreignKey:ProfileID" json:"pitch,omitempty"`
}
