package models

import "gorm.io/datatypes"

type Organization struct {
	BaseModel
	Name           string `gorm:"not null" json:"name"`
	Slug           string `gorm:"uniqueIndex;not null" json:"slug"`
	OrgType        string `json:"org_type"` // surf_school, camp, media_house, brand, other
	City           string `json:"city"`
	Country        string `json:"country"`
	About          string `gorm:"type:text" json:"about"`
	ContactEmail   string `json:"contact_email"`
	WhatsApp       string `json:"whatsapp"`
	Website        string `json:"website"`
	Instagram      string `json:"instagram"`
	GalleryImages  datatypes.JSON `gorm:"type:jsonb" json:"gallery_images"`
	VideoURLs      datatypes.JSON `gorm:"type:jsonb" json:"video_urls"`
	OwnerProfileID string `gorm:"type:uuid;uniqueIndex;not null" json:"owner_profile_id"`
	Verified       bool   `gorm:"default:false" json:"verified"`
	Featured       bool   `gorm:"default:false" json:"featured"`

	Owner *Profile `gorm:"foreignKey:OwnerProfileID" json:"owner,omitempty"`
	Jobs  []Job    `gorm:"foreignKey:OrganizationID" json:"jobs,omitempty"`
}
