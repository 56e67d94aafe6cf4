package dto

type UpdateProfileRequest struct {
	DisplayName *string  `json:"display_name" validate:"omitempty,max=80"`
	FirstName   *string  `json:"first_name" validate:"omitempty,max=60"`
	LastName    *string  `json:"last_name" validate:"omitempty,max=60"`
	AvatarURL   *string  `json:"avatar_url" validate:"omitempty,url"`
	Country     *string  `json:"country" validate:"omitempty,max=60"`
	Bio         *string  `json:"bio" validate:"omitempty,max=280"`
	About       *string  `json:"about" validate:"omitempty,max=4000"`
	Skills      []string `json:"skills" validate:"omitempty,max=20"`
	Links       map[string]string `json:"links"`
	IsPublic    *bool    `json:"is_public"`
}

type UpsertPitchRequest struct {
	Headline         string `json:"headline" binding:"required" validate:"required,max=120"`
	Availability     string `json:"availability" validate:"max=120"`
	DesiredRole      string `json:"desired_role" validate:"omitempty,is-job-role"`
	CompensationNote string `json:"compensation_note" validate:"max=280"`
	ContactMethod    string `json:"contact_method" validate:"omitempty,is-contact-method"`
	ContactValue     string `json:"contact_value" validate:"max=280"`
	Visible          *bool  `json:"visible"`
}
