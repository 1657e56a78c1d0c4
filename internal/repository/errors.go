package repository

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrTimeout     = errors.New("store timeout")
	ErrUnavailable = errors.New("store unavailable")
)

// DuplicateError reports a unique-constraint violation on the named field.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string { return e.Field + " already exists" }
