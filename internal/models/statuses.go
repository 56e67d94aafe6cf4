package models

type ProfileKind string
type JobRole string
type JobStatus string
type CompensationType string
type AccommodationLevel string
type ContactMethod string
type ApplicationStatus string

const (
	ProfileKindPerson ProfileKind = "person"
	ProfileKindOrg    ProfileKind = "org"

	JobRoleCoach     JobRole = "coach"
	JobRoleMedia     JobRole = "media"
	JobRoleCampStaff JobRole = "camp_staff"
	JobRoleOps       JobRole = "ops"
	JobRoleOther     JobRole = "other"

	JobStatusPending  JobStatus = "pending"
	JobStatusActive   JobStatus = "active"
	JobStatusRejected JobStatus = "rejected"
	JobStatusClosed   JobStatus = "closed"

	CompensationSalary    CompensationType = "salary"
	CompensationDaily     CompensationType = "daily"
	CompensationFreelance CompensationType = "freelance"
	CompensationVolunteer CompensationType = "volunteer"

	AccommodationYes     AccommodationLevel = "yes"
	AccommodationNo      AccommodationLevel = "no"
	AccommodationPartial AccommodationLevel = "partial"

	ContactMethodEmail    ContactMethod = "email"
	ContactMethodWhatsApp ContactMethod = "whatsapp"
	ContactMethodLink     ContactMethod = "link"

	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusViewed    ApplicationStatus = "viewed"
	ApplicationStatusContacted ApplicationStatus = "contacted"
	ApplicationStatusArchived  ApplicationStatus = "archived"
)
