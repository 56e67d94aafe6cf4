package dto

type UpdateOrganizationRequest struct {
	Name          *string  `json:"name" validate:"omitempty,max=120"`
	Slug          *string  `json:"slug" validate:"omitempty,min=3,max=60"`
	OrgType       *string  `json:"org_type" validate:"omitempty,max=40"`
	City          *string  `json:"city" validate:"omitempty,max=80"`
	Country       *string  `json:"country" validate:"omitempty,max=60"`
	About         *string  `json:"about" validate:"omitempty,max=4000"`
	ContactEmail  *string  `json:"contact_email" validate:"omitempty,email"`
	WhatsApp      *string  `json:"whatsapp" validate:"omitempty,max=40"`
	Website       *string  `json:"website" validate:"omitempty,url"`
	Instagram     *string  `json:"instagram" validate:"omitempty,max=80"`
	GalleryImages []string `json:"gallery_images" validate:"omitempty,max=24"`
	VideoURLs     []string `json:"video_urls" validate:"omitempty,max=12"`
}
