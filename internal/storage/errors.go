// ABOUTME: Common storage errors
// ABOUTME: Enables consistent error handling across slot backends and the codec

package storage

import (
	"errors"
	"fmt"
)

// ErrSlotEmpty is returned by Slot.Read when no snapshot has been written.
var ErrSlotEmpty = errors.New("storage slot is empty")

// ErrPersistence matches any *PersistenceError.
var ErrPersistence = errors.New("persistence failure")

// ErrUnrecognizedVariant matches any *UnrecognizedVariantError.
var ErrUnrecognizedVariant = errors.New("unrecognized workout type")

// PersistenceError wraps a failed read or write of the snapshot.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s snapshot: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is reports whether target is ErrPersistence.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// UnrecognizedVariantError reports a persisted entry with an unknown type tag.
type UnrecognizedVariantError struct {
	Index int
	ID    string
	Type  string
}

func (e *UnrecognizedVariantError) Error() string {
	return fmt.Sprintf("entry %d (id %q): unrecognized workout type %q", e.Index, e.ID, e.Type)
}

// Is reports whether target is ErrUnrecognizedVariant.
func (e *UnrecognizedVariantError) Is(target error) bool {
	return target == ErrUnrecognizedVariant
}
