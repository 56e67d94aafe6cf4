package apperrors

import (
	"net/http"
)

// Factories and predefined variables for domain errors shared across services.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and friends)
// into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrMagicLinkConsumed = New(
	CodeInvalidToken,
	"auth",
	"This sign-in link has already been used",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// --- Profiles ---

var ErrProfileNotPublic = New(
	CodeForbidden,
	"profile",
	"This profile is private",
	http.StatusForbidden,
)

var ErrInvalidProfileKind = New(
	CodeInvalidOperation,
	"profile",
	"Operation not available for this account kind",
	http.StatusBadRequest,
)

// --- Jobs & moderation ---

var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"You do not own this job posting",
	http.StatusForbidden,
)

var ErrJobNotActive = New(
	CodeInvalidStatus,
	"job",
	"This job posting is not open for applications",
	http.StatusConflict,
)

var ErrJobNotPending = New(
	CodeInvalidStatus,
	"moderation",
	"Only pending job postings can be moderated",
	http.StatusConflict,
)

// --- Applications ---

var ErrDuplicateApplication = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

var ErrCannotApplyToOwnJob = New(
	CodeInvalidOperation,
	"application",
	"Organizations cannot apply to their own job postings",
	http.StatusBadRequest,
)
