package manager

import (
	"time"

	"github.com/rs/zerolog"

	"memd/pkg/types"
)

// defaultMaxMemoryBytes is the application budget applied when no budget is
// configured: 2 GB across all simultaneously loaded models.
const defaultMaxMemoryBytes int64 = 2_000_000_000

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	Catalog        []types.Model
	MaxMemoryBytes int64
	DefaultModel   string
	// Adapter maps model bytes into memory. Nil selects the build's
	// default runtime adapter.
	Adapter RuntimeAdapter
	// Publisher receives lifecycle events. Nil drops them.
	Publisher EventPublisher
	// Access receives last-access signals for loaded models. Nil drops them.
	Access AccessRecorder
	// Logger for load/evict decisions. Nil disables logging.
	Logger *zerolog.Logger
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		records:        make(map[string]*record),
		catalog:        cfg.Catalog,
		maxMemoryBytes: cfg.MaxMemoryBytes,
		defaultModel:   cfg.DefaultModel,
		adapter:        cfg.Adapter,
		publisher:      cfg.Publisher,
		access:         cfg.Access,
		log:            zerolog.Nop(),
	}
	if m.maxMemoryBytes <= 0 {
		m.maxMemoryBytes = defaultMaxMemoryBytes
	}
	if m.adapter == nil {
		m.adapter = NewRuntimeAdapter()
	}
	if m.publisher == nil {
		m.publisher = noopPublisher{}
	}
	if m.access == nil {
		m.access = noopAccess{}
	}
	if cfg.Logger != nil {
		m.log = *cfg.Logger
	}
	m.startTime = time.Now()
	return m
}
