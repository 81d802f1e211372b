package services

import "errors"

// Sentinel errors controllers translate to HTTP status codes. Services wrap
// them with context via fmt.Errorf("%w: ...") so errors.Is still matches.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
)
