package errs

import "errors"

// Cross-layer markers. Domain and usecase sentinels are marked with these so
// handlers can pick a status without knowing every package's errors.
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
