package manager

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"memd/pkg/types"
)

// Manager owns the loaded-model registry and enforces the memory budget.
// All mutable cache state lives behind mu; no partial views escape it.
type Manager struct {
	mu      sync.Mutex
	records map[string]*record

	catalog        []types.Model
	maxMemoryBytes int64
	defaultModel   string

	adapter   RuntimeAdapter
	publisher EventPublisher
	access    AccessRecorder
	log       zerolog.Logger

	startTime      time.Time
	loadsTotal     uint64
	evictionsTotal uint64
}

// New constructs a Manager with the given catalog and budget.
func New(catalog []types.Model, maxMemoryBytes int64, defaultModel string) *Manager {
	// Delegate to NewWithConfig to centralize defaults.
	return NewWithConfig(ManagerConfig{
		Catalog:        catalog,
		MaxMemoryBytes: maxMemoryBytes,
		DefaultModel:   defaultModel,
	})
}

// Ready reports whether the manager can serve load requests: either no
// default model is configured, or the configured default is in the catalog.
func (m *Manager) Ready() bool {
	if m.defaultModel == "" {
		return true
	}
	_, ok := m.getModelByID(m.defaultModel)
	return ok
}

// ListModels returns the catalog of loadable models.
func (m *Manager) ListModels() []types.Model {
	// return a shallow copy to avoid external mutation
	out := make([]types.Model, len(m.catalog))
	copy(out, m.catalog)
	return out
}

// MaxMemoryBytes returns the configured budget ceiling.
func (m *Manager) MaxMemoryBytes() int64 { return m.maxMemoryBytes }

// Close tears the manager down, releasing every loaded model regardless of
// reference counts.
func (m *Manager) Close() error {
	m.UnloadAll()
	return nil
}
