package engine

import "errors"

// Error kinds surfaced by every engine operation. Callers match with
// errors.Is; the HTTP layer maps them to status codes.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
	ErrInternal        = errors.New("internal error")
)
