package manager

// totalMemoryLocked folds memoryUsedBytes across all records. mu must be held.
func (m *Manager) totalMemoryLocked() int64 {
	var total int64
	for _, rec := range m.records {
		total += rec.MemoryUsedBytes
	}
	return total
}

// fitsLocked reports whether a candidate load of the given size fits the
// budget given current usage. mu must be held.
func (m *Manager) fitsLocked(candidateBytes int64) bool {
	return m.totalMemoryLocked()+candidateBytes <= m.maxMemoryBytes
}

// availableLocked returns the headroom left under the budget, never
// negative. mu must be held.
func (m *Manager) availableLocked() int64 {
	avail := m.maxMemoryBytes - m.totalMemoryLocked()
	if avail < 0 {
		avail = 0
	}
	return avail
}
