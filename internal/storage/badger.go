// ABOUTME: Badger storage slot for the workout snapshot
// ABOUTME: Embedded key-value store, one key holds the whole collection

package storage

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
)

// BadgerSlot implements Slot with an embedded badger database.
type BadgerSlot struct {
	db  *badger.DB
	dir string
	key []byte
}

// Compile-time check that BadgerSlot implements Slot.
var _ Slot = (*BadgerSlot)(nil)

// NewBadgerSlot opens (or creates) a badger database in dir.
func NewBadgerSlot(dir string) (*BadgerSlot, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerSlot{db: db, dir: dir, key: []byte(SlotName)}, nil
}

// Name implements Slot.
func (s *BadgerSlot) Name() string { return "badger:" + s.dir }

// Read implements Slot.
func (s *BadgerSlot) Read() ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return data, nil
}

// Write implements Slot.
func (s *BadgerSlot) Write(data []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key, data)
	})
	if err != nil {
		return fmt.Errorf("set slot: %w", err)
	}
	return nil
}

// Clear implements Slot.
func (s *BadgerSlot) Clear() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(s.key)
	})
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}

// Close implements Slot.
func (s *BadgerSlot) Close() error {
	return s.db.Close()
}
