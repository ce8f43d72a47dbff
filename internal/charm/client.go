// ABOUTME: Charm KV storage slot using the transactional Do API
// ABOUTME: Short-lived connections to avoid lock contention with the MCP server

package charm

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/charm/kv"

	"github.com/harper/workouts/internal/storage"
)

const (
	// DBName is the name of the Charm KV database for workout data.
	DBName = "workouts"

	// DefaultCharmHost is the default Charm server to use.
	DefaultCharmHost = "charm.2389.dev"
)

// Client stores the workout snapshot in Charm KV.
// It does NOT hold a persistent connection: each operation opens the
// database, performs the operation, and closes it.
type Client struct {
	dbName   string
	key      []byte
	autoSync bool
}

// Compile-time check that Client implements storage.Slot.
var _ storage.Slot = (*Client)(nil)

// Config holds client configuration options.
type Config struct {
	// CharmHost is the Charm server to use (default: charm.2389.dev).
	CharmHost string
	// AutoSync enables automatic sync after writes.
	AutoSync bool
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *Config {
	host := os.Getenv("CHARM_HOST")
	if host == "" {
		host = DefaultCharmHost
	}
	return &Config{
		CharmHost: host,
		AutoSync:  true,
	}
}

// NewClient creates a new client with the given config.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Set CHARM_HOST before any KV operations
	if err := os.Setenv("CHARM_HOST", cfg.CharmHost); err != nil {
		return nil, err
	}

	return &Client{
		dbName:   DBName,
		key:      []byte(storage.SlotName),
		autoSync: cfg.AutoSync,
	}, nil
}

// NewTestClient creates a client for testing without network access.
func NewTestClient(dbName string) (*Client, error) {
	return &Client{
		dbName:   dbName,
		key:      []byte(storage.SlotName),
		autoSync: false,
	}, nil
}

// Name implements storage.Slot.
func (c *Client) Name() string { return "charm:" + c.dbName }

// Read implements storage.Slot (read-only, no lock contention).
func (c *Client) Read() ([]byte, error) {
	var val []byte
	err := kv.DoReadOnly(c.dbName, func(k *kv.KV) error {
		var err error
		val, err = k.Get(c.key)
		return err
	})
	if errors.Is(err, kv.ErrMissingKey) {
		return nil, storage.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	if len(val) == 0 {
		return nil, storage.ErrSlotEmpty
	}
	return val, nil
}

// Write implements storage.Slot.
func (c *Client) Write(data []byte) error {
	return c.do(func(k *kv.KV) error {
		return k.Set(c.key, data)
	})
}

// Clear implements storage.Slot.
func (c *Client) Clear() error {
	return c.do(func(k *kv.KV) error {
		err := k.Delete(c.key)
		if errors.Is(err, kv.ErrMissingKey) {
			return nil
		}
		return err
	})
}

// do executes fn with write access and syncs afterwards when enabled.
func (c *Client) do(fn func(k *kv.KV) error) error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		if err := fn(k); err != nil {
			return err
		}
		if c.autoSync {
			return k.Sync()
		}
		return nil
	})
}

// Sync triggers a manual sync with the charm server.
func (c *Client) Sync() error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		return k.Sync()
	})
}

// Close is a no-op: connections are closed after each operation.
func (c *Client) Close() error {
	return nil
}
