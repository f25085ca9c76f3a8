package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"memd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	ListModels() []types.Model
	LoadByID(ctx context.Context, id string) (types.LoadingResult, error)
	Unload(modelID string) bool
	UnloadAll()
	OptimizeMemory() int
	MemoryReport() types.MemoryReport
	LoadedModelIDs() []string
	Status() types.StatusResponse
	Ready() bool
}

// NewMux builds the chi router over the given service.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))
	}
	r.Use(MetricsMiddleware)
	r.Use(RequestLogger)

	// @Summary List catalog models
	// @Success 200 {object} types.ModelsResponse
	// @Router /models [get]
	r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types.ModelsResponse{Models: svc.ListModels()})
	})

	// @Summary List loaded model ids
	// @Success 200 {object} types.LoadedResponse
	// @Router /models/loaded [get]
	r.Get("/models/loaded", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types.LoadedResponse{ModelIDs: svc.LoadedModelIDs()})
	})

	// @Summary Load a model into the memory budget
	// @Param id path string true "model id"
	// @Success 200 {object} types.LoadingResult
	// @Failure 404 {object} types.ErrorResponse
	// @Failure 507 {object} types.ErrorResponse
	// @Router /models/{id}/load [post]
	r.Post("/models/{id}/load", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		res, err := svc.LoadByID(r.Context(), id)
		if err != nil {
			writeJSONError(w, statusForError(err), err.Error())
			return
		}
		writeJSON(w, res)
	})

	// @Summary Release one reference to a loaded model
	// @Param id path string true "model id"
	// @Success 200 {object} types.UnloadResponse
	// @Router /models/{id}/unload [post]
	r.Post("/models/{id}/unload", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types.UnloadResponse{Unloaded: svc.Unload(chi.URLParam(r, "id"))})
	})

	// @Summary Unload every model regardless of references
	// @Success 204 "no content"
	// @Router /models/unload_all [post]
	r.Post("/models/unload_all", func(w http.ResponseWriter, r *http.Request) {
		svc.UnloadAll()
		w.WriteHeader(http.StatusNoContent)
	})

	// @Summary Sweep idle models until usage is at or below half the budget
	// @Success 200 {object} types.OptimizeResponse
	// @Router /memory/optimize [post]
	r.Post("/memory/optimize", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types.OptimizeResponse{Evicted: svc.OptimizeMemory()})
	})

	// @Summary Memory accounting snapshot
	// @Success 200 {object} types.MemoryReport
	// @Router /memory/report [get]
	r.Get("/memory/report", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.MemoryReport())
	})

	// @Summary Daemon status
	// @Success 200 {object} types.StatusResponse
	// @Router /status [get]
	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Status())
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("not ready"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Swagger UI (no-op unless built with -tags=swagger)
	MountSwagger(r)

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}
