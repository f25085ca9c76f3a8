package manager

// evictLRULocked removes the least-recently-used record whose reference
// count is zero. Records still referenced are never candidates. Returns the
// removed record, or nil when nothing is evictable. mu must be held; the
// caller closes the returned record's handle after releasing the lock.
func (m *Manager) evictLRULocked() *record {
	var victim *record
	for _, rec := range m.records {
		if rec.RefCount > 0 {
			continue
		}
		if victim == nil || rec.LastUsedAt.Before(victim.LastUsedAt) {
			victim = rec
		}
	}
	if victim == nil {
		return nil
	}
	delete(m.records, victim.ModelID)
	m.evictionsTotal++
	evictionsTotalMetric.Inc()
	return victim
}

// OptimizeMemory evicts least-recently-used idle records until total usage
// is at or below half the budget, or nothing evictable remains. Returns the
// number of records evicted. Unlike the single-shot attempt on the load
// path, this is a deliberate multi-step sweep for callers under pressure.
func (m *Manager) OptimizeMemory() int {
	target := m.maxMemoryBytes / 2
	var evicted []*record

	m.mu.Lock()
	for m.totalMemoryLocked() > target {
		victim := m.evictLRULocked()
		if victim == nil {
			break
		}
		evicted = append(evicted, victim)
	}
	total := m.totalMemoryLocked()
	m.mu.Unlock()

	memoryUsedBytesMetric.Set(float64(total))
	loadedModelsMetric.Set(float64(m.recordCount()))
	for _, victim := range evicted {
		if victim.Handle != nil {
			_ = victim.Handle.Close()
		}
		m.publisher.Publish(Event{Name: "evict", ModelID: victim.ModelID, Fields: map[string]any{
			"freed_bytes": victim.MemoryUsedBytes,
		}})
	}
	if len(evicted) > 0 {
		m.log.Info().Int("evicted", len(evicted)).Int64("total_used_bytes", total).Msg("memory optimize swept idle models")
	}
	m.publisher.Publish(Event{Name: "optimize_done", Fields: map[string]any{"evicted": len(evicted)}})
	return len(evicted)
}

func (m *Manager) recordCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
