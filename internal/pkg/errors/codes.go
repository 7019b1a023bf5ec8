package errors

import "net/http"

// Error code constants for the intake pipeline.
// Errors carry code + params; messages stay short and English-only, the
// review frontend translates by code.

// Package transport and container error codes.
const (
	CodeTransportError    = "TRANSPORT_ERROR"
	CodePackageTooLarge   = "PACKAGE_TOO_LARGE"
	CodeManifestInvalid   = "MANIFEST_INVALID"
	CodeChecksumMismatch  = "CHECKSUM_MISMATCH"
	CodeSignatureInvalid  = "SIGNATURE_INVALID"
	CodeSignatureRequired = "SIGNATURE_REQUIRED"
	CodeArchiveError      = "ARCHIVE_ERROR"
)

// Vocabulary error codes.
const (
	CodeVocabularyIncompatible = "VOCABULARY_INCOMPATIBLE"
	CodeVocabularyUnknown      = "VOCABULARY_UNKNOWN_DOMAIN"
)

// Pipeline state error codes.
const (
	CodePackageNotFound         = "PACKAGE_NOT_FOUND"
	CodePackageBusy             = "PACKAGE_BUSY"
	CodeStateTransitionInvalid  = "STATE_TRANSITION_INVALID"
	CodeValidationFailed        = "VALIDATION_FAILED"
	CodeConflictNotFound        = "CONFLICT_NOT_FOUND"
	CodeConflictUnresolved      = "CONFLICT_UNRESOLVED"
	CodeConflictAlreadyResolved = "CONFLICT_ALREADY_RESOLVED"
)

// Commit error codes.
const (
	CodeFkUnresolvable       = "FK_UNRESOLVABLE"
	CodeDuplicateBusinessID  = "DUPLICATE_BUSINESS_IDENTIFIER"
	CodeBlobStoreError       = "BLOB_STORE_ERROR"
	CodeCommitFailed         = "COMMIT_FAILED"
	CodeSequenceExhausted    = "SEQUENCE_EXHAUSTED"
	CodeReportNotAvailable   = "REPORT_NOT_AVAILABLE"
	CodeStagingRowsNotLoaded = "STAGING_ROWS_NOT_LOADED"
)

// Auth error codes.
const (
	CodeNotAuthenticated = "NOT_AUTHENTICATED"
	CodeTokenExpired     = "TOKEN_EXPIRED"
	CodeTokenInvalid     = "TOKEN_INVALID"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeNameInvalid         = "NAME_INVALID"
)

// Convenience constructors using predefined codes.

// ErrPackageNotFound creates a package not found error.
func ErrPackageNotFound(packageID string) *AppError {
	return (&AppError{
		Code:       CodePackageNotFound,
		Message:    "import package not found",
		HTTPStatus: http.StatusNotFound,
	}).WithParams(map[string]interface{}{"packageId": packageID})
}

// ErrPackageBusy signals that another pipeline stage holds the package lock.
func ErrPackageBusy(packageID string) *AppError {
	return (&AppError{
		Code:       CodePackageBusy,
		Message:    "another operation is running on this package",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{"packageId": packageID})
}

// ErrStateTransition signals an illegal package status transition.
func ErrStateTransition(from, to string) *AppError {
	return (&AppError{
		Code:       CodeStateTransitionInvalid,
		Message:    "operation not allowed in the package's current status",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{"from": from, "to": to})
}

// ErrConflictUnresolved signals a commit attempted with open conflicts.
func ErrConflictUnresolved(packageID string, open int) *AppError {
	return (&AppError{
		Code:       CodeConflictUnresolved,
		Message:    "package has unresolved duplicate conflicts",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{"packageId": packageID, "unresolved": open})
}

// ErrNotAuthenticated signals a missing acting user on an operation that
// requires one.
func ErrNotAuthenticated() *AppError {
	return &AppError{
		Code:       CodeNotAuthenticated,
		Message:    "operation requires an authenticated user",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// ErrInvalidRequestField creates a bad request error for forbidden fields.
func ErrInvalidRequestFieldf(fieldName string) *AppError {
	return &AppError{
		Code:       CodeInvalidRequestField,
		Message:    "request contains forbidden field: " + fieldName,
		HTTPStatus: http.StatusBadRequest,
	}
}
