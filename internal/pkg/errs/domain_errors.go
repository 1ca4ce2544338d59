package errs

import "errors"

// Cross-layer sentinel errors shared by the usecase packages
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
