package apperrors

import (
	"net/http"
)

// Factories and predefined variables for the business errors this marketplace
// actually produces. Repository sentinel errors (gorm.ErrRecordNotFound and
// friends) are translated into these at the service layer.

// ErrNotFound converts a repository "record not found" into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidStatusValue rejects a status outside the allowed transition set.
func ErrInvalidStatusValue(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Users & moderation ---

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrRecruiterNotFound = New(
	CodeNotFound,
	"user",
	"Recruiter not found",
	http.StatusNotFound,
)

// ErrArtistFieldsForbidden rejects artist-only attributes supplied for a
// non-artist account instead of silently dropping them.
var ErrArtistFieldsForbidden = New(
	CodeValidationFailed,
	"validation",
	"Artist-only fields are not allowed for this role",
	http.StatusBadRequest,
)

var ErrUnknownIdentity = New(
	CodeValidationFailed,
	"validation",
	"Unknown artist identity",
	http.StatusBadRequest,
)

var ErrIdentityMismatch = New(
	CodeValidationFailed,
	"validation",
	"Identity details do not match the declared identity",
	http.StatusBadRequest,
)

// ErrGalleryLocked gates gallery access until an artist profile is approved.
var ErrGalleryLocked = New(
	CodeForbidden,
	"user",
	"Gallery access is locked until profile approval",
	http.StatusForbidden,
)

var ErrInvalidMediaKind = New(
	CodeValidationFailed,
	"validation",
	"Invalid media type",
	http.StatusBadRequest,
)

// --- Jobs ---

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

var ErrOnlyRecruitersPost = New(
	CodeForbidden,
	"job",
	"Only recruiters can post jobs",
	http.StatusForbidden,
)

var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"Not authorized to delete this job",
	http.StatusForbidden,
)

// --- Blogs ---

var ErrBlogNotFound = New(
	CodeNotFound,
	"blog",
	"Blog not found",
	http.StatusNotFound,
)
