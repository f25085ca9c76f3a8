package manager

import (
	"context"
	"testing"
)

func TestUnloadDrainsReferenceCount(t *testing.T) {
	dir := t.TempDir()
	m := NewWithConfig(ManagerConfig{MaxMemoryBytes: 1_000_000_000})
	mdl := testModel(t, dir, "small", 100_000_000)

	for i := 0; i < 2; i++ {
		if _, err := m.Load(context.Background(), mdl); err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
	}

	if m.Unload("small") {
		t.Fatalf("first unload must report still referenced")
	}
	if !m.IsLoaded("small") {
		t.Fatalf("model must remain loaded while referenced")
	}
	if !m.Unload("small") {
		t.Fatalf("second unload must remove the record")
	}
	if m.IsLoaded("small") {
		t.Fatalf("model must be gone after the count drains")
	}
	if used := m.MemoryUsed(); used != 0 {
		t.Fatalf("expected exact bytes freed, still using %d", used)
	}
}

func TestUnloadAbsentModel(t *testing.T) {
	m := NewWithConfig(ManagerConfig{})
	if m.Unload("never-loaded") {
		t.Fatalf("unload of an absent model must return false")
	}
}

func TestUnloadRoundTripMatchesLoads(t *testing.T) {
	dir := t.TempDir()
	m := NewWithConfig(ManagerConfig{MaxMemoryBytes: 1_000_000_000})
	mdl := testModel(t, dir, "rt", 250_000_000)

	const n = 5
	for i := 0; i < n; i++ {
		if _, err := m.Load(context.Background(), mdl); err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
	}
	for i := 0; i < n-1; i++ {
		if m.Unload("rt") {
			t.Fatalf("unload %d freed a still-referenced model", i)
		}
	}
	if !m.Unload("rt") {
		t.Fatalf("final unload must free the model")
	}
	if m.IsLoaded("rt") || m.MemoryUsed() != 0 {
		t.Fatalf("round trip must return to the empty state")
	}
}

func TestUnloadAllIgnoresReferenceCounts(t *testing.T) {
	dir := t.TempDir()
	m := NewWithConfig(ManagerConfig{MaxMemoryBytes: 1_000_000_000})

	for _, id := range []string{"a", "b"} {
		mdl := testModel(t, dir, id, 100_000_000)
		// double-load so every record is still referenced
		for i := 0; i < 2; i++ {
			if _, err := m.Load(context.Background(), mdl); err != nil {
				t.Fatalf("load %s: %v", id, err)
			}
		}
	}

	m.UnloadAll()
	if ids := m.LoadedModelIDs(); len(ids) != 0 {
		t.Fatalf("expected empty registry, got %v", ids)
	}
	if used := m.MemoryUsed(); used != 0 {
		t.Fatalf("expected zero usage after hard reset, got %d", used)
	}
}
