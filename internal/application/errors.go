package application

import "keyframer/internal/domain"

// Sentinel errors, re-exported so adapters can match on them without
// importing the domain package.
var (
	ErrInvalid  = domain.ErrInvalid
	ErrNotFound = domain.ErrNotFound
	ErrConflict = domain.ErrConflict
	ErrFormat   = domain.ErrFormat
	ErrIO       = domain.ErrIO
)

// Re-export the typed errors
type (
	ValidationError = domain.ValidationError
	NotFoundError   = domain.NotFoundError
	ConflictError   = domain.ConflictError
	FormatError     = domain.FormatError
	IOError         = domain.IOError
)
