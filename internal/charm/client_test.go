// ABOUTME: Tests for the Charm KV snapshot slot
// ABOUTME: Runs against a local KV directory without network access

package charm

import (
	"errors"
	"testing"

	"github.com/harper/workouts/internal/storage"
)

func testClient(t *testing.T, name string) *Client {
	t.Helper()
	t.Setenv("CHARM_DATA_DIR", t.TempDir())

	client, err := NewTestClient(name)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClient_ReadEmpty(t *testing.T) {
	client := testClient(t, "test-empty")

	_, err := client.Read()
	if !errors.Is(err, storage.ErrSlotEmpty) {
		t.Errorf("expected ErrSlotEmpty, got %v", err)
	}
}

func TestClient_WriteReadClear(t *testing.T) {
	client := testClient(t, "test-roundtrip")

	if err := client.Write([]byte(`[{"type":"running"}]`)); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	data, err := client.Read()
	if err != nil {
		t.Fatalf("failed to read: %v", err)
	}
	if string(data) != `[{"type":"running"}]` {
		t.Errorf("unexpected snapshot %q", data)
	}

	if err := client.Clear(); err != nil {
		t.Fatalf("failed to clear: %v", err)
	}
	if _, err := client.Read(); !errors.Is(err, storage.ErrSlotEmpty) {
		t.Errorf("expected ErrSlotEmpty after clear, got %v", err)
	}
}

func TestClient_Name(t *testing.T) {
	client := testClient(t, "test-name")
	if client.Name() != "charm:test-name" {
		t.Errorf("unexpected name %q", client.Name())
	}
}

func TestDefaultConfig_UsesEnvHost(t *testing.T) {
	t.Setenv("CHARM_HOST", "charm.example.com")
	cfg := DefaultConfig()
	if cfg.CharmHost != "charm.example.com" {
		t.Errorf("expected host from env, got %q", cfg.CharmHost)
	}
	if !cfg.AutoSync {
		t.Error("expected AutoSync to default to true")
	}
}
