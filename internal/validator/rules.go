package validator

import (
	"log"

	"crewboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum validation tags used by the DTOs.
// Empty values pass; 'required' handles those separately.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-profile-kind", validateProfileKind)
	mustRegister("is-job-role", validateJobRole)
	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-compensation-type", validateCompensationType)
	mustRegister("is-accommodation", validateAccommodation)
	mustRegister("is-contact-method", validateContactMethod)
	mustRegister("is-application-status", validateApplicationStatus)
}

func validateProfileKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ProfileKind(value) {
	case models.ProfileKindPerson, models.ProfileKindOrg:
		return true
	default:
		return false
	}
}

func validateJobRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobRole(value) {
	case models.JobRoleCoach, models.JobRoleMedia, models.JobRoleCampStaff, models.JobRoleOps, models.JobRoleOther:
		return true
	default:
		return false
	}
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobStatus(value) {
	case models.JobStatusPending, models.JobStatusActive, models.JobStatusRejected, models.JobStatusClosed:
		return true
	default:
		return false
	}
}

func validateCompensationType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.CompensationType(value) {
	case models.CompensationSalary, models.CompensationDaily, models.CompensationFreelance, models.CompensationVolunteer:
		return true
	default:
		return false
	}
}

func validateAccommodation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.AccommodationLevel(value) {
	case models.AccommodationYes, models.AccommodationNo, models.AccommodationPartial:
		return true
	default:
		return false
	}
}

func validateContactMethod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ContactMethod(value) {
	case models.ContactMethodEmail, models.ContactMethodWhatsApp, models.ContactMethodLink:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusPending, models.ApplicationStatusViewed,
		models.ApplicationStatusContacted, models.ApplicationStatusArchived:
		return true
	default:
		return false
	}
}
