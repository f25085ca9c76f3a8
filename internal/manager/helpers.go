package manager

import (
	"strings"

	"memd/pkg/types"
)

// Helper: find model in catalog by id.
func (m *Manager) getModelByID(id string) (types.Model, bool) {
	for _, mdl := range m.catalog {
		if mdl.ID == id {
			return mdl, true
		}
	}
	return types.Model{}, false
}

// validateModel rejects descriptors that fail basic sanity checks before
// any state is touched.
func validateModel(mdl types.Model) error {
	if strings.TrimSpace(mdl.ID) == "" {
		return ErrInvalidModel("empty model id")
	}
	if mdl.SizeBytes < 0 {
		return ErrInvalidModel("negative size for model " + mdl.ID)
	}
	if strings.TrimSpace(mdl.Path) == "" {
		return ErrInvalidModel("empty path for model " + mdl.ID)
	}
	return nil
}

// infoFromRecord copies a record into its public projection. mu must be held.
func infoFromRecord(rec *record) types.ModelMemoryInfo {
	return types.ModelMemoryInfo{
		ModelID:                  rec.ModelID,
		Name:                     rec.Name,
		MemoryUsedBytes:          rec.MemoryUsedBytes,
		ReferenceCount:           rec.RefCount,
		LoadedAtUnix:             rec.LoadedAt.Unix(),
		LastUsedUnix:             rec.LastUsedAt.Unix(),
		EstimatedInferenceTimeMs: rec.EstInferenceMs,
	}
}

// resultFromRecord builds a LoadingResult from a record. mu must be held.
func resultFromRecord(rec *record) types.LoadingResult {
	status := types.LoadStatusLoaded
	if rec.State == StateLoading {
		status = types.LoadStatusLoading
	}
	return types.LoadingResult{
		ModelID:                  rec.ModelID,
		Status:                   status,
		MemoryUsedBytes:          rec.MemoryUsedBytes,
		EstimatedInferenceTimeMs: rec.EstInferenceMs,
	}
}
