package manager

// Unload decrements the reference count for modelID. When the count drains
// to zero the record is removed, its runtime handle released, and true is
// returned. False means the model was not present at all, or is still held
// by other callers after the decrement.
func (m *Manager) Unload(modelID string) bool {
	m.mu.Lock()
	rec, ok := m.records[modelID]
	if !ok {
		m.mu.Unlock()
		return false
	}
	rec.RefCount--
	if rec.RefCount > 0 {
		m.mu.Unlock()
		return false
	}
	delete(m.records, modelID)
	total := m.totalMemoryLocked()
	loaded := len(m.records)
	m.mu.Unlock()

	if rec.Handle != nil {
		_ = rec.Handle.Close()
	}
	memoryUsedBytesMetric.Set(float64(total))
	loadedModelsMetric.Set(float64(loaded))
	m.log.Info().Str("model_id", modelID).Int64("freed_bytes", rec.MemoryUsedBytes).Msg("model unloaded")
	m.publisher.Publish(Event{Name: "unload_done", ModelID: modelID, Fields: map[string]any{
		"freed_bytes": rec.MemoryUsedBytes,
	}})
	return true
}

// UnloadAll clears the registry unconditionally, ignoring reference
// counts. Hard-reset escape hatch used at teardown.
func (m *Manager) UnloadAll() {
	m.mu.Lock()
	drained := make([]*record, 0, len(m.records))
	for _, rec := range m.records {
		drained = append(drained, rec)
	}
	m.records = make(map[string]*record)
	m.mu.Unlock()

	for _, rec := range drained {
		if rec.Handle != nil {
			_ = rec.Handle.Close()
		}
	}
	memoryUsedBytesMetric.Set(0)
	loadedModelsMetric.Set(0)
	if len(drained) > 0 {
		m.log.Info().Int("count", len(drained)).Msg("all models unloaded")
	}
	m.publisher.Publish(Event{Name: "unload_all", Fields: map[string]any{"count": len(drained)}})
}
