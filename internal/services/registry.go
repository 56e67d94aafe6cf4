package services

import (
	"crewboard_backend/internal/email"
)

// ServiceContainer holds every service the application wires at startup.
type ServiceContainer struct {
	AuthService         *AuthService
	ProfileService      *ProfileService
	OrganizationService *OrganizationService
	JobService          *JobService
	ApplicationService  *ApplicationService
	EmailSender         email.Sender
}
