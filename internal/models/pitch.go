package models

// CandidatePitch is a crew member's structured self-promotion record used for
// direct hiring outreach outside the job/application flow.
type CandidatePitch struct {
	BaseModel
	ProfileID        string  `gorm:"type:uuid;uniqueIndex;not null" json:"profile_id"`
	Headline         string  `json:"headline"`
	Availability     string  `json:"availability"` // e.g. "from June", "season 2027"
	DesiredRole      JobRole `gorm:"type:varchar(16)" json:"desired_role"`
	CompensationNote string  `json:"compensation_note"`
	ContactMethod    ContactMethod `gorm:"type:varchar(16)" json:"contact_method"`
	ContactValue     string  `json:"contact_value"`
	Visible          bool    `gorm:"default:true" json:"visible"`

	Profile *Profile `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
}
