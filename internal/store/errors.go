package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for any read or mutation against an absent id.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID is returned when an insert collides with an existing id.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrReasonRequired is returned when a pause or cancel transition is
	// attempted without a reason.
	ErrReasonRequired = errors.New("reason required")

	// ErrParse marks a corrupted persisted snapshot. It is recovered
	// internally via the seed fallback and never escapes Hydrate.
	ErrParse = errors.New("snapshot parse error")

	// ErrPersistenceWrite marks a failed snapshot write. Non-fatal: the
	// in-memory state stays authoritative for the rest of the session.
	ErrPersistenceWrite = errors.New("persistence write failed")
)

// ValidationError reports a malformed field on a write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
