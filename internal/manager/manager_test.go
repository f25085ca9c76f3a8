package manager

import (
	"context"
	"testing"
)

func TestNewWithConfigDefaults(t *testing.T) {
	m := NewWithConfig(ManagerConfig{})
	if m.maxMemoryBytes != defaultMaxMemoryBytes {
		t.Fatalf("expected default budget %d, got %d", defaultMaxMemoryBytes, m.maxMemoryBytes)
	}
	if m.adapter == nil || m.publisher == nil || m.access == nil {
		t.Fatalf("expected adapter, publisher, and access defaults to be set")
	}
}

func TestNewDelegatesToConfig(t *testing.T) {
	m := New(nil, 123, "")
	if m.maxMemoryBytes != 123 {
		t.Fatalf("expected budget 123, got %d", m.maxMemoryBytes)
	}
}

func TestCloseReleasesEverything(t *testing.T) {
	dir := t.TempDir()
	m := NewWithConfig(ManagerConfig{MaxMemoryBytes: 1_000_000_000})
	if _, err := m.Load(context.Background(), testModel(t, dir, "a", 100_000_000)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if m.MemoryUsed() != 0 {
		t.Fatalf("expected empty registry after close")
	}
}
