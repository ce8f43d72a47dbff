// ABOUTME: Data migration between workout storage backends
// ABOUTME: Copies the decoded snapshot from a source slot to a destination slot

package storage

import (
	"errors"
	"fmt"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Workouts int
	Skipped  int
}

// MigrateSlot copies the snapshot in src to dst. The snapshot is decoded and
// re-encoded so entries the codec would skip on load are not carried over.
// An empty source is migrated as an empty collection.
func MigrateSlot(src, dst Slot) (*MigrateSummary, error) {
	data, err := src.Read()
	if errors.Is(err, ErrSlotEmpty) {
		data = []byte("[]")
	} else if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	workouts, warnings, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode source: %w", err)
	}

	out, err := Encode(workouts)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := dst.Write(out); err != nil {
		return nil, fmt.Errorf("write destination: %w", err)
	}

	return &MigrateSummary{Workouts: len(workouts), Skipped: len(warnings)}, nil
}

// IsSlotEmpty reports whether s holds no snapshot.
func IsSlotEmpty(s Slot) (bool, error) {
	_, err := s.Read()
	if errors.Is(err, ErrSlotEmpty) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", s.Name(), err)
	}
	return false, nil
}
