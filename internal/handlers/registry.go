package handlers

// AppHandlers holds every HTTP handler the router mounts.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	OrganizationHandler *OrganizationHandler
	JobHandler          *JobHandler
	ApplicationHandler  *ApplicationHandler
}
