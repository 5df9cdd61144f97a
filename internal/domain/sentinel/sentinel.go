package sentinel

import "errors"

// Stores and services return these (optionally wrapped); the REST layer maps
// them to status codes. Absence is signalled with nil results, not errors.
var (
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrIntegrityViolation = errors.New("database integrity constraint violated")
)
