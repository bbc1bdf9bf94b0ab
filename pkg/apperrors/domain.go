package apperrors

import (
	"net/http"
)

// Factories for wrapping repository-level errors.

// ErrNotFound converts a missing-record error into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a unique-violation error into a 409 AppError.
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
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// ErrExternalService wraps a payment-gateway or SMTP failure. The upstream
// message is surfaced verbatim where the caller considers it safe.
func ErrExternalService(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusBadGateway)
}

// Predefined variables for frequent, static errors.

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
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

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// --- Job postings ---

var ErrInvalidJobPostingStatus = ErrInvalidStatus(
	"job_posting",
	"Operation not allowed for the current job posting status",
)

// ErrJobPostingHasProject guards cancellation: once a project exists the
// posting is frozen, regardless of payment state.
var ErrJobPostingHasProject = New(
	CodeConflict,
	"job_posting",
	"Job posting already has an active project and cannot be canceled",
	http.StatusConflict,
)

var ErrPaymentRequired = New(
	CodeExternalServiceError,
	"payment",
	"Payment was declined by the provider",
	http.StatusBadGateway,
)

// ErrRefundFailed is distinct from a declined charge: money was captured but
// could not be returned, so the posting is left untouched.
var ErrRefundFailed = New(
	CodeExternalServiceError,
	"payment",
	"Charge was captured but the refund failed; posting left unchanged",
	http.StatusBadGateway,
)

// --- Candidates ---

var ErrCandidateAlreadyExists = New(
	CodeAlreadyExists,
	"candidate",
	"You have already applied to this job posting",
	http.StatusConflict,
)

// ErrCandidateAlreadyResolved covers both a repeated accept/reject and the
// concurrent double-accept: the conditional status update reports zero rows
// in either case.
var ErrCandidateAlreadyResolved = ErrInvalidStatus(
	"candidate",
	"Candidate has already been accepted or rejected",
)

var ErrJobPostingNotPublished = ErrInvalidStatus(
	"candidate",
	"Applications are only accepted on published job postings",
)

// --- Checkpoints ---

var ErrInvalidCheckpointStatus = ErrInvalidStatus(
	"checkpoint",
	"Operation not allowed for the current checkpoint status",
)

var ErrCheckpointNotSubmittable = ErrInvalidOperation(
	"checkpoint",
	"Checkpoint can only be submitted once the project has started",
)

// --- Chat ---

var ErrConversationAccessDenied = New(
	CodeForbidden,
	"chat",
	"Access to conversation denied",
	http.StatusForbidden,
)
