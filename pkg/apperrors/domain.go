package apperrors

import (
	"net/http"
)

// Factories and predefined variables for the domain errors of the donation
// flow. Services return these; handlers never build error responses by hand.

// ErrNotFound converts a repository not-found sentinel into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrEmailAlreadyExists - signup with an email that is already registered.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already exists",
	http.StatusConflict,
)

// ErrInvalidCredentials - login with an unknown email or a wrong password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrInvalidRole - role outside {Donor, Recipient, Volunteer, Admin}.
var ErrInvalidRole = New(
	CodeValidationFailed,
	"validation",
	"Role must be one of: Admin, Donor, Recipient, Volunteer",
	http.StatusBadRequest,
)

// ErrInvalidStatusFilter - ?status= outside the recognized listing statuses.
var ErrInvalidStatusFilter = New(
	CodeValidationFailed,
	"validation",
	"Invalid status filter",
	http.StatusBadRequest,
)

// ErrListingNotAvailable - claim attempted on a listing that has already left
// the available state. Distinct from ErrListingAlreadyClaimed, which is the
// uniqueness violation on the claims table itself.
var ErrListingNotAvailable = New(
	CodeInvalidStatus,
	"listing",
	"Listing is not available for claiming",
	http.StatusConflict,
)

// ErrListingAlreadyClaimed - a claim already exists for the listing.
var ErrListingAlreadyClaimed = New(
	CodeConflict,
	"listing",
	"Listing has already been claimed",
	http.StatusConflict,
)

// ErrRoleNotAllowed - the actor's role lacks the capability for the action.
// Deliberately a FORBIDDEN code, not a validation error, so authorization
// failures are distinguishable from input-shape failures.
func ErrRoleNotAllowed(message string) *AppError {
	return New(CodeForbidden, "auth", message, http.StatusForbidden)
}
