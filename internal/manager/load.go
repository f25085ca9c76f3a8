package manager

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"

	"memd/pkg/types"
)

// Load admits a model into the budget and creates or refreshes its
// registry entry.
//
// Fast path: a record already exists for mdl.ID, its reference count is
// incremented and its existing accounting is returned unchanged; loading a
// model twice is never a second charge against the budget.
//
// Slow path: the descriptor is validated and its file stat'd outside the
// lock, then the budget is checked under the lock with at most one eviction
// attempt. On admission the record is inserted with reference count 1 and
// the runtime maps the bytes outside the lock; a runtime failure rolls the
// record back and returns ErrLoadingFailed. If a concurrent unload removes
// the record before the runtime answers, the handle is released and the
// load fails the same way.
func (m *Manager) Load(ctx context.Context, mdl types.Model) (types.LoadingResult, error) {
	if err := validateModel(mdl); err != nil {
		return errorResult(mdl.ID, err), err
	}
	if err := ctx.Err(); err != nil {
		return errorResult(mdl.ID, err), err
	}

	// I/O validation happens before the lock so a disk stall never blocks
	// unrelated cache operations.
	if _, err := os.Stat(mdl.Path); err != nil {
		err = ErrModelFileNotFound(mdl.Path)
		loadFailuresMetric.WithLabelValues("file_not_found").Inc()
		return errorResult(mdl.ID, err), err
	}

	opID := uuid.NewString()
	m.publisher.Publish(Event{Name: "load_start", ModelID: mdl.ID, OpID: opID})

	now := time.Now()
	m.mu.Lock()
	if rec, ok := m.records[mdl.ID]; ok {
		rec.RefCount++
		rec.LastUsedAt = now
		res := resultFromRecord(rec)
		m.mu.Unlock()
		m.touchAccess(mdl.ID, now)
		m.publisher.Publish(Event{Name: "load_done", ModelID: mdl.ID, OpID: opID, Fields: map[string]any{"cached": true}})
		return res, nil
	}

	required := mdl.SizeBytes
	var evicted *record
	if !m.fitsLocked(required) {
		// Single eviction attempt on the load path; callers needing more
		// headroom call OptimizeMemory explicitly. A model larger than the
		// whole budget can never fit, so nothing is evicted for it.
		if required <= m.maxMemoryBytes {
			evicted = m.evictLRULocked()
		}
		if !m.fitsLocked(required) {
			available := m.availableLocked()
			m.mu.Unlock()
			m.closeAndAnnounceEvicted(evicted)
			err := ErrInsufficientMemory(required, available)
			loadFailuresMetric.WithLabelValues("insufficient_memory").Inc()
			m.log.Warn().Str("model_id", mdl.ID).Int64("required_bytes", required).Int64("available_bytes", available).Msg("load rejected by budget")
			m.publisher.Publish(Event{Name: "load_failed", ModelID: mdl.ID, OpID: opID, Fields: map[string]any{"reason": "insufficient_memory"}})
			return errorResult(mdl.ID, err), err
		}
	}

	rec := &record{
		ModelID:         mdl.ID,
		Name:            mdl.Name,
		MemoryUsedBytes: required,
		LoadedAt:        now,
		LastUsedAt:      now,
		RefCount:        1,
		EstInferenceMs:  estimateInferenceMs(required),
		State:           StateLoading,
	}
	m.records[mdl.ID] = rec
	total := m.totalMemoryLocked()
	m.mu.Unlock()

	m.closeAndAnnounceEvicted(evicted)
	memoryUsedBytesMetric.Set(float64(total))

	// Map the model bytes outside the lock; bookkeeping is committed or
	// rolled back once the runtime answers.
	handle, err := m.adapter.Open(mdl.Path)
	if err != nil {
		m.mu.Lock()
		// Roll back only our own record; a concurrent unload may already
		// have removed it, or a later load replaced it at this key.
		if cur, ok := m.records[mdl.ID]; ok && cur == rec {
			delete(m.records, mdl.ID)
		}
		total = m.totalMemoryLocked()
		m.mu.Unlock()
		memoryUsedBytesMetric.Set(float64(total))
		loadFailuresMetric.WithLabelValues("runtime").Inc()
		m.log.Error().Err(err).Str("model_id", mdl.ID).Msg("runtime load failed, record rolled back")
		m.publisher.Publish(Event{Name: "load_failed", ModelID: mdl.ID, OpID: opID, Fields: map[string]any{"reason": "runtime"}})
		lerr := ErrLoadingFailed(err.Error())
		return errorResult(mdl.ID, lerr), lerr
	}

	m.mu.Lock()
	if cur, ok := m.records[mdl.ID]; !ok || cur != rec {
		// A concurrent unload drained the record while the runtime was
		// mapping it. The admission no longer stands: release the handle
		// and fail the load instead of resurrecting a removed record.
		total = m.totalMemoryLocked()
		m.mu.Unlock()
		_ = handle.Close()
		memoryUsedBytesMetric.Set(float64(total))
		loadFailuresMetric.WithLabelValues("unloaded_during_load").Inc()
		m.log.Warn().Str("model_id", mdl.ID).Msg("model unloaded while loading, handle released")
		m.publisher.Publish(Event{Name: "load_failed", ModelID: mdl.ID, OpID: opID, Fields: map[string]any{"reason": "unloaded_during_load"}})
		lerr := ErrLoadingFailed("model unloaded while loading")
		return errorResult(mdl.ID, lerr), lerr
	}
	rec.Handle = handle
	rec.State = StateReady
	rec.LastUsedAt = time.Now()
	res := resultFromRecord(rec)
	m.loadsTotal++
	loaded := len(m.records)
	m.mu.Unlock()

	loadsTotalMetric.Inc()
	loadedModelsMetric.Set(float64(loaded))
	m.touchAccess(mdl.ID, now)
	m.log.Info().Str("model_id", mdl.ID).Int64("size_bytes", required).Int64("total_used_bytes", total).Msg("model loaded")
	m.publisher.Publish(Event{Name: "load_done", ModelID: mdl.ID, OpID: opID, Fields: map[string]any{"size_bytes": required}})
	return res, nil
}

// LoadByID resolves id against the catalog and loads it. An empty id falls
// back to the configured default model.
func (m *Manager) LoadByID(ctx context.Context, id string) (types.LoadingResult, error) {
	if id == "" {
		id = m.defaultModel
	}
	mdl, ok := m.getModelByID(id)
	if !ok {
		err := ErrModelNotFound(id)
		return errorResult(id, err), err
	}
	return m.Load(ctx, mdl)
}

// closeAndAnnounceEvicted releases an evicted record's runtime handle and
// publishes the eviction. Must be called without mu held.
func (m *Manager) closeAndAnnounceEvicted(victim *record) {
	if victim == nil {
		return
	}
	if victim.Handle != nil {
		_ = victim.Handle.Close()
	}
	m.log.Info().Str("model_id", victim.ModelID).Int64("freed_bytes", victim.MemoryUsedBytes).Msg("evicted idle model")
	m.publisher.Publish(Event{Name: "evict", ModelID: victim.ModelID, Fields: map[string]any{
		"freed_bytes": victim.MemoryUsedBytes,
	}})
}

func errorResult(modelID string, err error) types.LoadingResult {
	return types.LoadingResult{ModelID: modelID, Status: types.LoadStatusError, Message: err.Error()}
}
