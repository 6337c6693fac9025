package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Lookup errors
	ErrLibraryNotFound   = errors.New("library not found")
	ErrCheckableNotFound = errors.New("checkable not found")

	// Uniqueness errors
	ErrResourceExists = errors.New("resource already exists")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
)
