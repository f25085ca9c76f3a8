package manager

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"memd/pkg/types"
)

// helper: create a model file on disk. Only existence matters for the
// manager; accounting is driven by the descriptor's SizeBytes.
func createModelFile(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("model-bytes"), 0o644); err != nil {
		t.Fatalf("write model file: %v", err)
	}
	return p
}

// helper: descriptor with an on-disk backing file.
func testModel(t *testing.T, dir, id string, sizeBytes int64) types.Model {
	t.Helper()
	return types.Model{
		ID:        id,
		Name:      id,
		Path:      createModelFile(t, dir, id+".gguf"),
		SizeBytes: sizeBytes,
	}
}

// seedIdleRecord registers a zero-reference resident record directly, the
// state a holder leaves behind when it releases without removal.
func seedIdleRecord(m *Manager, id string, sizeBytes int64, lastUsed time.Time) {
	m.mu.Lock()
	m.records[id] = &record{
		ModelID:         id,
		Name:            id,
		MemoryUsedBytes: sizeBytes,
		LoadedAt:        lastUsed,
		LastUsedAt:      lastUsed,
		RefCount:        0,
		EstInferenceMs:  estimateInferenceMs(sizeBytes),
		State:           StateReady,
	}
	m.mu.Unlock()
}

// failingAdapter refuses every open, for rollback tests.
type failingAdapter struct{}

func (failingAdapter) Open(string) (RuntimeHandle, error) {
	return nil, errors.New("runtime refused")
}

// gatedAdapter parks its first Open between entered and release, so a test
// can run concurrent manager calls against an in-flight load.
type gatedAdapter struct {
	entered chan struct{}
	release chan struct{}
	handle  *trackingHandle
}

func (a *gatedAdapter) Open(string) (RuntimeHandle, error) {
	close(a.entered)
	<-a.release
	return a.handle, nil
}

// trackingHandle records whether Close was ever called.
type trackingHandle struct {
	mu     sync.Mutex
	closed bool
}

func (h *trackingHandle) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}

func (h *trackingHandle) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}
