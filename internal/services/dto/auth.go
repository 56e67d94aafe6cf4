package dto

import "crewboard_backend/internal/models"

type RegisterRequest struct {
	Email       string `json:"email" binding:"required" validate:"required,email"`
	Password    string `json:"password" binding:"required" validate:"required,min=8"`
	Kind        string `json:"kind" binding:"required" validate:"required,is-profile-kind"`
	DisplayName string `json:"display_name" validate:"max=80"`
	OrgName     string `json:"org_name" validate:"max=120"` // required for org-kind accounts
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type MagicLinkRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type MagicLinkVerifyRequest struct {
	Token string `json:"token" binding:"required" validate:"required"`
}

type AuthResponse struct {
	AccessToken string          `json:"access_token"`
	Profile     *models.Profile `json:"profile"`
}
