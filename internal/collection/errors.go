// ABOUTME: Collection store errors
// ABOUTME: Typed not-found and duplicate-id errors backed by sentinels

package collection

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no workout has the requested id.
var ErrNotFound = errors.New("not found")

// ErrDuplicateID is returned when adding a workout whose id is already present.
var ErrDuplicateID = errors.New("duplicate id")

// NotFoundError names the id that was missing.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("workout %q not found", e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateIDError names the colliding id.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("workout id %q already exists", e.ID)
}

// Is reports whether target is ErrDuplicateID.
func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}
