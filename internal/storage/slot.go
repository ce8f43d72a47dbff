// ABOUTME: Storage slot interface and simple slot backends
// ABOUTME: A slot holds one serialized snapshot under a fixed name

package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// SlotName is the fixed key the snapshot is stored under.
const SlotName = "workouts"

// Slot is a single-value key-value store holding the serialized collection.
type Slot interface {
	// Read returns the snapshot, or ErrSlotEmpty if none was written.
	Read() ([]byte, error)
	// Write overwrites the snapshot.
	Write(data []byte) error
	// Clear removes the snapshot. Clearing an empty slot is not an error.
	Clear() error
	Close() error
	// Name describes the backend for logs and CLI output.
	Name() string
}

// FileSlot stores the snapshot as a JSON file.
type FileSlot struct {
	path string
}

// Compile-time check that FileSlot implements Slot.
var _ Slot = (*FileSlot)(nil)

// NewFileSlot creates a file slot at path. The directory is created if needed.
func NewFileSlot(path string) (*FileSlot, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil { //nolint:gosec // 0750 is appropriate for user data directory
		return nil, fmt.Errorf("create directory: %w", err)
	}
	return &FileSlot{path: path}, nil
}

// Path returns the snapshot file path.
func (s *FileSlot) Path() string { return s.path }

// Name implements Slot.
func (s *FileSlot) Name() string { return "file:" + s.path }

// Read implements Slot.
func (s *FileSlot) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil, ErrSlotEmpty
	}
	return data, nil
}

// Write implements Slot. The file is replaced atomically.
func (s *FileSlot) Write(data []byte) error {
	return AtomicWrite(s.path, data)
}

// Clear implements Slot.
func (s *FileSlot) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", s.path, err)
	}
	return nil
}

// Close implements Slot.
func (s *FileSlot) Close() error { return nil }

// AtomicWrite writes data to a temp file in the same directory and renames it over path.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil { //nolint:gosec // 0750 is appropriate for user data directory
		return fmt.Errorf("create directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// ErrWriteRejected is returned by a MemorySlot configured to fail writes.
var ErrWriteRejected = errors.New("write rejected")

// MemorySlot keeps the snapshot in memory.
type MemorySlot struct {
	mu         sync.Mutex
	data       []byte
	failWrites bool
	writes     int
}

// Compile-time check that MemorySlot implements Slot.
var _ Slot = (*MemorySlot)(nil)

// NewMemorySlot creates an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Name implements Slot.
func (s *MemorySlot) Name() string { return "memory" }

// FailWrites makes subsequent writes fail with ErrWriteRejected.
func (s *MemorySlot) FailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = fail
}

// Writes returns how many successful writes the slot has seen.
func (s *MemorySlot) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Read implements Slot.
func (s *MemorySlot) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, ErrSlotEmpty
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

// Write implements Slot.
func (s *MemorySlot) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return ErrWriteRejected
	}
	s.data = append([]byte(nil), data...)
	s.writes++
	return nil
}

// Clear implements Slot.
func (s *MemorySlot) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return ErrWriteRejected
	}
	s.data = nil
	return nil
}

// Close implements Slot.
func (s *MemorySlot) Close() error { return nil }
