package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the error code so that a copy produced by WithDetails
// still matches its predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Location sample errors
	ErrLocationBatchFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOCATION_BATCH_FAILED",
		"Failed to save location batch",
		"",
	)

	// Checkpoint-related errors
	ErrCheckpointNotFound = NewBaseError(
		http.StatusNotFound,
		"CHECKPOINT_NOT_FOUND",
		"Checkpoint not found",
		"",
	)

	ErrPatrolLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"PATROL_LOCATION_NOT_FOUND",
		"Patrol location not found",
		"",
	)

	ErrCheckpointTagInvalid = NewBaseError(
		http.StatusBadRequest,
		"CHECKPOINT_TAG_INVALID",
		"Invalid checkpoint tag",
		"",
	)

	ErrVerificationFailed = NewBaseError(
		http.StatusInternalServerError,
		"VERIFICATION_FAILED",
		"Failed to verify checkpoint",
		"",
	)

	// Photo-related errors
	ErrPhotoNotFound = NewBaseError(
		http.StatusNotFound,
		"PHOTO_NOT_FOUND",
		"Photo not found",
		"",
	)

	ErrPhotoStoreFailed = NewBaseError(
		http.StatusBadGateway,
		"PHOTO_STORE_FAILED",
		"Failed to store photo",
		"",
	)

	ErrPhotoMetadataFailed = NewBaseError(
		http.StatusInternalServerError,
		"PHOTO_METADATA_FAILED",
		"Failed to save photo metadata",
		"",
	)

	ErrPhotoDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"PHOTO_DELETE_FAILED",
		"Failed to delete photo",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is / errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// IsAppError reports whether err carries the given predefined error anywhere in its chain.
func IsAppError(err error, target *BaseError) bool {
	return errors.Is(err, target)
}
