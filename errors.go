package rampaged

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSortBy matches every *ValidationError via errors.Is.
	ErrInvalidSortBy = errors.New("invalid sort by")
	// ErrInvalidPageRequest is wrapped by request binding and validation failures.
	ErrInvalidPageRequest = errors.New("invalid page request")
)

// ValidationError is returned when an ordering built from a sort string
// cannot be applied to the query. Individual terms are not reported; SortBy
// carries the raw sort string as the caller supplied it.
type ValidationError struct {
	SortBy string
	// Suggestion is the closest known field name, when the query could tell.
	Suggestion string
	Err        error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid SortBy: %s", e.SortBy)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidSortBy
}

// UnknownFieldError is returned by Query implementations when a field path
// does not exist on the entity shape.
type UnknownFieldError struct {
	Field string
	// Known lists the field names available at the level the lookup failed.
	Known []string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field '%s'", e.Field)
}
