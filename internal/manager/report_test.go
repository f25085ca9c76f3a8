package manager

import (
	"context"
	"testing"

	"memd/pkg/types"
)

func TestMemoryReportSnapshot(t *testing.T) {
	dir := t.TempDir()
	m := NewWithConfig(ManagerConfig{MaxMemoryBytes: 1_000_000_000})

	if _, err := m.Load(context.Background(), testModel(t, dir, "a", 250_000_000)); err != nil {
		t.Fatalf("load a: %v", err)
	}
	if _, err := m.Load(context.Background(), testModel(t, dir, "b", 250_000_000)); err != nil {
		t.Fatalf("load b: %v", err)
	}

	rep := m.MemoryReport()
	if rep.TotalUsedBytes != 500_000_000 {
		t.Fatalf("expected 500000000 used, got %d", rep.TotalUsedBytes)
	}
	if rep.AvailableBytes != 500_000_000 {
		t.Fatalf("expected 500000000 available, got %d", rep.AvailableBytes)
	}
	if rep.MemoryUsagePercentage != 50 {
		t.Fatalf("expected 50%%, got %v", rep.MemoryUsagePercentage)
	}
	if rep.LoadedCount != 2 || len(rep.Models) != 2 {
		t.Fatalf("expected 2 models, got %d/%d", rep.LoadedCount, len(rep.Models))
	}
	// deterministic order by model id
	if rep.Models[0].ModelID != "a" || rep.Models[1].ModelID != "b" {
		t.Fatalf("expected sorted models, got %s, %s", rep.Models[0].ModelID, rep.Models[1].ModelID)
	}
	if rep.Models[0].ReferenceCount != 1 {
		t.Fatalf("expected reference count 1, got %d", rep.Models[0].ReferenceCount)
	}
	if rep.Models[0].EstimatedInferenceTimeMs != 200 {
		t.Fatalf("expected 200ms estimate for a 250MB model, got %d", rep.Models[0].EstimatedInferenceTimeMs)
	}
}

func TestMemoryReportEmpty(t *testing.T) {
	m := NewWithConfig(ManagerConfig{MaxMemoryBytes: 2_000_000_000})
	rep := m.MemoryReport()
	if rep.TotalUsedBytes != 0 || rep.LoadedCount != 0 || rep.MemoryUsagePercentage != 0 {
		t.Fatalf("unexpected empty report: %+v", rep)
	}
	if rep.AvailableBytes != 2_000_000_000 {
		t.Fatalf("expected full budget available, got %d", rep.AvailableBytes)
	}
}

func TestLoadedModelIDsSorted(t *testing.T) {
	dir := t.TempDir()
	m := NewWithConfig(ManagerConfig{MaxMemoryBytes: 1_000_000_000})
	for _, id := range []string{"zeta", "alpha", "mid"} {
		if _, err := m.Load(context.Background(), testModel(t, dir, id, 1_000_000)); err != nil {
			t.Fatalf("load %s: %v", id, err)
		}
	}
	ids := m.LoadedModelIDs()
	want := []string{"alpha", "mid", "zeta"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}

func TestStatusCountsLoadsAndEvictions(t *testing.T) {
	dir := t.TempDir()
	m := NewWithConfig(ManagerConfig{MaxMemoryBytes: 300_000_000})

	if _, err := m.Load(context.Background(), testModel(t, dir, "a", 200_000_000)); err != nil {
		t.Fatalf("load a: %v", err)
	}
	m.Unload("a")
	seedIdleRecord(m, "idle", 200_000_000, m.startTime)
	if _, err := m.Load(context.Background(), testModel(t, dir, "b", 150_000_000)); err != nil {
		t.Fatalf("load b: %v", err)
	}

	st := m.Status()
	if st.LoadsTotal != 2 {
		t.Fatalf("expected 2 loads, got %d", st.LoadsTotal)
	}
	if st.EvictionsTotal != 1 {
		t.Fatalf("expected 1 eviction, got %d", st.EvictionsTotal)
	}
	if st.UsedBytes != 150_000_000 || st.LoadedCount != 1 {
		t.Fatalf("unexpected status accounting: %+v", st)
	}
	if st.MaxMemoryBytes != 300_000_000 {
		t.Fatalf("unexpected budget: %d", st.MaxMemoryBytes)
	}
}

func TestListModelsReturnsCopy(t *testing.T) {
	cat := []types.Model{{ID: "a"}, {ID: "b"}}
	m := NewWithConfig(ManagerConfig{Catalog: cat})
	out := m.ListModels()
	if len(out) != 2 {
		t.Fatalf("expected 2 got %d", len(out))
	}
	// mutate returned slice and ensure internal catalog remains intact
	out[0].ID = "z"
	out2 := m.ListModels()
	if out2[0].ID != "a" {
		t.Fatalf("catalog mutated via returned slice")
	}
}

func TestReadyDependsOnDefaultModel(t *testing.T) {
	if m := NewWithConfig(ManagerConfig{}); !m.Ready() {
		t.Fatalf("manager without a default model is always ready")
	}
	m := NewWithConfig(ManagerConfig{DefaultModel: "ghost"})
	if m.Ready() {
		t.Fatalf("expected not ready with an unknown default model")
	}
	m = NewWithConfig(ManagerConfig{DefaultModel: "a", Catalog: []types.Model{{ID: "a"}}})
	if !m.Ready() {
		t.Fatalf("expected ready with a catalogued default model")
	}
}
