package manager

import (
	"sort"
	"time"

	"memd/pkg/types"
)

// IsLoaded reports whether a record exists for modelID.
func (m *Manager) IsLoaded(modelID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.records[modelID]
	return ok
}

// LoadedModelIDs returns the ids of all resident models, sorted.
func (m *Manager) LoadedModelIDs() []string {
	m.mu.Lock()
	ids := make([]string, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	m.mu.Unlock()
	sort.Strings(ids)
	return ids
}

// MemoryUsed returns the total bytes charged against the budget.
func (m *Manager) MemoryUsed() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalMemoryLocked()
}

// AvailableMemory returns the headroom left under the budget, never negative.
func (m *Manager) AvailableMemory() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.availableLocked()
}

// MemoryReport builds a consistent snapshot of budget accounting. The
// per-model slice is a copy ordered by model id.
func (m *Manager) MemoryReport() types.MemoryReport {
	m.mu.Lock()
	total := m.totalMemoryLocked()
	models := make([]types.ModelMemoryInfo, 0, len(m.records))
	for _, rec := range m.records {
		models = append(models, infoFromRecord(rec))
	}
	m.mu.Unlock()

	sort.Slice(models, func(i, j int) bool { return models[i].ModelID < models[j].ModelID })
	pct := 0.0
	if m.maxMemoryBytes > 0 {
		pct = 100 * float64(total) / float64(m.maxMemoryBytes)
	}
	avail := m.maxMemoryBytes - total
	if avail < 0 {
		avail = 0
	}
	return types.MemoryReport{
		TotalUsedBytes:        total,
		MaxMemoryBytes:        m.maxMemoryBytes,
		AvailableBytes:        avail,
		MemoryUsagePercentage: pct,
		LoadedCount:           len(models),
		Models:                models,
	}
}

// Status builds the detailed status response for GET /status.
func (m *Manager) Status() types.StatusResponse {
	m.mu.Lock()
	total := m.totalMemoryLocked()
	models := make([]types.ModelMemoryInfo, 0, len(m.records))
	for _, rec := range m.records {
		models = append(models, infoFromRecord(rec))
	}
	loads := m.loadsTotal
	evictions := m.evictionsTotal
	m.mu.Unlock()

	sort.Slice(models, func(i, j int) bool { return models[i].ModelID < models[j].ModelID })
	now := time.Now()
	return types.StatusResponse{
		MaxMemoryBytes: m.maxMemoryBytes,
		UsedBytes:      total,
		LoadedCount:    len(models),
		LoadsTotal:     loads,
		EvictionsTotal: evictions,
		UptimeSeconds:  int64(now.Sub(m.startTime).Seconds()),
		ServerTimeUnix: now.Unix(),
		Models:         models,
	}
}
