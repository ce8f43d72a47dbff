// ABOUTME: Tests for storage slot backends
// ABOUTME: Runs the same contract against file, sqlite, badger, and memory slots

package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func slotBackends(t *testing.T) map[string]Slot {
	t.Helper()
	dir := t.TempDir()

	file, err := NewFileSlot(filepath.Join(dir, "file", "workouts.json"))
	if err != nil {
		t.Fatalf("failed to create file slot: %v", err)
	}

	sqlite, err := NewSQLiteSlot(filepath.Join(dir, "sqlite", "workouts.db"))
	if err != nil {
		t.Fatalf("failed to create sqlite slot: %v", err)
	}

	badger, err := NewBadgerSlot(filepath.Join(dir, "badger"))
	if err != nil {
		t.Fatalf("failed to create badger slot: %v", err)
	}

	slots := map[string]Slot{
		"file":   file,
		"sqlite": sqlite,
		"badger": badger,
		"memory": NewMemorySlot(),
	}
	t.Cleanup(func() {
		for _, s := range slots {
			_ = s.Close()
		}
	})
	return slots
}

func TestSlot_Contract(t *testing.T) {
	for name, slot := range slotBackends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := slot.Read(); !errors.Is(err, ErrSlotEmpty) {
				t.Fatalf("expected ErrSlotEmpty on fresh slot, got %v", err)
			}

			if err := slot.Write([]byte("first")); err != nil {
				t.Fatalf("failed to write: %v", err)
			}
			if err := slot.Write([]byte("second")); err != nil {
				t.Fatalf("failed to overwrite: %v", err)
			}

			data, err := slot.Read()
			if err != nil {
				t.Fatalf("failed to read: %v", err)
			}
			if string(data) != "second" {
				t.Errorf("expected 'second', got %q", data)
			}

			if err := slot.Clear(); err != nil {
				t.Fatalf("failed to clear: %v", err)
			}
			if _, err := slot.Read(); !errors.Is(err, ErrSlotEmpty) {
				t.Errorf("expected ErrSlotEmpty after clear, got %v", err)
			}
			if err := slot.Clear(); err != nil {
				t.Errorf("clearing an empty slot should not fail: %v", err)
			}
		})
	}
}

func TestFileSlot_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "path")
	slot, err := NewFileSlot(filepath.Join(dir, "workouts.json"))
	if err != nil {
		t.Fatalf("failed to create slot: %v", err)
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("directory was not created")
	}
	if slot.Path() != filepath.Join(dir, "workouts.json") {
		t.Errorf("unexpected path %q", slot.Path())
	}
}

func TestFileSlot_EmptyFileIsEmptySlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workouts.json")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatalf("failed to write empty file: %v", err)
	}
	slot, err := NewFileSlot(path)
	if err != nil {
		t.Fatalf("failed to create slot: %v", err)
	}

	if _, err := slot.Read(); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("expected ErrSlotEmpty, got %v", err)
	}
}

func TestAtomicWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workouts.json")

	if err := AtomicWrite(path, []byte("[]")); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "workouts.json" {
		t.Errorf("expected only workouts.json, got %v", entries)
	}
}

func TestMemorySlot_FailWrites(t *testing.T) {
	slot := NewMemorySlot()
	slot.FailWrites(true)

	if err := slot.Write([]byte("x")); !errors.Is(err, ErrWriteRejected) {
		t.Errorf("expected ErrWriteRejected, got %v", err)
	}
	if slot.Writes() != 0 {
		t.Errorf("expected no successful writes, got %d", slot.Writes())
	}

	slot.FailWrites(false)
	if err := slot.Write([]byte("x")); err != nil {
		t.Errorf("expected write to succeed, got %v", err)
	}
	if slot.Writes() != 1 {
		t.Errorf("expected 1 write, got %d", slot.Writes())
	}
}

func TestIsSlotEmpty(t *testing.T) {
	for name, slot := range slotBackends(t) {
		t.Run(name, func(t *testing.T) {
			empty, err := IsSlotEmpty(slot)
			if err != nil || !empty {
				t.Errorf("expected fresh slot to be empty, got %v, %v", empty, err)
			}

			if err := slot.Write([]byte("[]")); err != nil {
				t.Fatalf("failed to write: %v", err)
			}
			empty, err = IsSlotEmpty(slot)
			if err != nil || empty {
				t.Errorf("expected written slot to be non-empty, got %v, %v", empty, err)
			}
		})
	}
}
