package types

// LoadStatus is the outcome state carried by a LoadingResult.
type LoadStatus string

const (
	LoadStatusLoaded  LoadStatus = "loaded"
	LoadStatusLoading LoadStatus = "loading"
	LoadStatusError   LoadStatus = "error"
)

// LoadingResult is returned by a load request.
type LoadingResult struct {
	// ID of the model the request referred to.
	// example: whisper-large-v3
	ModelID string `json:"model_id" example:"whisper-large-v3"`
	// Outcome: loaded, loading, or error.
	// example: loaded
	Status LoadStatus `json:"status" example:"loaded"`
	// Error message when Status is error.
	Message string `json:"message,omitempty"`
	// Bytes charged against the budget for this model.
	// example: 1500000000
	MemoryUsedBytes int64 `json:"memory_used_bytes" example:"1500000000"`
	// Deterministic inference-time estimate used for reporting.
	// example: 200
	EstimatedInferenceTimeMs int64 `json:"estimated_inference_time_ms" example:"200"`
}

// ModelMemoryInfo is the per-model detail inside a MemoryReport.
type ModelMemoryInfo struct {
	// example: whisper-large-v3
	ModelID string `json:"model_id" example:"whisper-large-v3"`
	// example: Whisper Large v3
	Name string `json:"name" example:"Whisper Large v3"`
	// example: 1500000000
	MemoryUsedBytes int64 `json:"memory_used_bytes" example:"1500000000"`
	// Number of outstanding logical holders of the model.
	// example: 2
	ReferenceCount int `json:"reference_count" example:"2"`
	// Unix seconds when the model became resident.
	// example: 1700000000
	LoadedAtUnix int64 `json:"loaded_at_unix" example:"1700000000"`
	// Unix seconds of the most recent access.
	// example: 1700000100
	LastUsedUnix int64 `json:"last_used_unix" example:"1700000100"`
	// example: 200
	EstimatedInferenceTimeMs int64 `json:"estimated_inference_time_ms" example:"200"`
}

// MemoryReport is a consistent snapshot of budget accounting.
type MemoryReport struct {
	// example: 1500000000
	TotalUsedBytes int64 `json:"total_used_bytes" example:"1500000000"`
	// example: 2000000000
	MaxMemoryBytes int64 `json:"max_memory_bytes" example:"2000000000"`
	// example: 500000000
	AvailableBytes int64 `json:"available_bytes" example:"500000000"`
	// 100 * used / budget; 0 when the budget is 0.
	// example: 75
	MemoryUsagePercentage float64 `json:"memory_usage_percentage" example:"75"`
	// example: 1
	LoadedCount int `json:"loaded_count" example:"1"`
	// Per-model detail, ordered by model id.
	Models []ModelMemoryInfo `json:"models"`
}

// ModelsResponse wraps the catalog returned by GET /models.
type ModelsResponse struct {
	Models []Model `json:"models"`
}

// LoadedResponse wraps the loaded-model ids returned by GET /models/loaded.
type LoadedResponse struct {
	ModelIDs []string `json:"model_ids"`
}

// UnloadResponse is returned by POST /models/{id}/unload.
type UnloadResponse struct {
	// True when the record was removed (reference count drained to zero).
	// example: true
	Unloaded bool `json:"unloaded" example:"true"`
}

// OptimizeResponse is returned by POST /memory/optimize.
type OptimizeResponse struct {
	// Number of records evicted by the sweep.
	// example: 2
	Evicted int `json:"evicted" example:"2"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: model file not found: /tmp/missing.gguf
	Error string `json:"error" example:"model file not found: /tmp/missing.gguf"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Budget ceiling in bytes across all loaded models.
	// example: 2000000000
	MaxMemoryBytes int64 `json:"max_memory_bytes" example:"2000000000"`
	// Total bytes currently charged against the budget.
	// example: 1500000000
	UsedBytes int64 `json:"used_bytes" example:"1500000000"`
	// Number of resident models.
	// example: 1
	LoadedCount int `json:"loaded_count" example:"1"`
	// Total successful loads since start.
	// example: 12
	LoadsTotal uint64 `json:"loads_total" example:"12"`
	// Total evictions since start.
	// example: 5
	EvictionsTotal uint64 `json:"evictions_total" example:"5"`
	// Uptime of the daemon in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
	// Per-model detail, ordered by model id.
	Models []ModelMemoryInfo `json:"models"`
}
