package types

import (
	"errors"
	"strings"
)

// Store lifecycle and operation errors. Callers match these with errors.Is;
// storage-level failures are wrapped driver errors and carry no sentinel.
var (
	// ErrNotFound is returned when an item, version, or setting does not
	// exist for the given identifier.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName is returned when persisting an item whose name is
	// already taken by another item.
	ErrDuplicateName = errors.New("item name already exists")

	// ErrStoreClosed is returned by operations on a closed store.
	ErrStoreClosed = errors.New("store is closed")

	// ErrAlreadyOpen is returned by Open on a store that is already open.
	ErrAlreadyOpen = errors.New("store is already open")

	// ErrMissingID is returned by operations that require a persisted item
	// when the item has no identifier yet.
	ErrMissingID = errors.New("item has no identifier")
)

// ValidationError reports the required-field problems found by
// Item.Validate. It is raised before any persistence attempt.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid item: " + strings.Join(e.Problems, "; ")
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
