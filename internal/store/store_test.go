package store

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "data", "state.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestTouchAndLastUsed(t *testing.T) {
	d := openTestDB(t)

	if _, ok, err := d.LastUsed("whisper-base"); err != nil || ok {
		t.Fatalf("expected no row yet, got ok=%v err=%v", ok, err)
	}

	first := time.Unix(1_700_000_000, 0)
	if err := d.Touch("whisper-base", first); err != nil {
		t.Fatalf("touch: %v", err)
	}
	got, ok, err := d.LastUsed("whisper-base")
	if err != nil || !ok {
		t.Fatalf("last used: ok=%v err=%v", ok, err)
	}
	if !got.Equal(first) {
		t.Fatalf("expected %v, got %v", first, got)
	}

	second := first.Add(time.Hour)
	if err := d.Touch("whisper-base", second); err != nil {
		t.Fatalf("second touch: %v", err)
	}
	got, _, _ = d.LastUsed("whisper-base")
	if !got.Equal(second) {
		t.Fatalf("expected update to %v, got %v", second, got)
	}
}

func TestRecentOrdersByLastUsed(t *testing.T) {
	d := openTestDB(t)
	base := time.Unix(1_700_000_000, 0)
	if err := d.Touch("old", base); err != nil {
		t.Fatalf("touch: %v", err)
	}
	if err := d.Touch("new", base.Add(time.Minute)); err != nil {
		t.Fatalf("touch: %v", err)
	}
	if err := d.Touch("new", base.Add(2*time.Minute)); err != nil {
		t.Fatalf("touch: %v", err)
	}

	rows, err := d.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ModelID != "new" || rows[1].ModelID != "old" {
		t.Fatalf("unexpected order: %+v", rows)
	}
	if rows[0].Loads != 2 {
		t.Fatalf("expected 2 loads for new, got %d", rows[0].Loads)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	d1, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := d1.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	d2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	_ = d2.Close()
}
