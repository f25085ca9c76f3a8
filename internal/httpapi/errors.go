package httpapi

import (
	"encoding/json"
	"net/http"

	"memd/internal/manager"
	"memd/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

// statusForError maps well-known manager errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case manager.IsInvalidModel(err):
		return http.StatusBadRequest
	case manager.IsModelNotFound(err), manager.IsModelFileNotFound(err):
		return http.StatusNotFound
	case manager.IsInsufficientMemory(err):
		return http.StatusInsufficientStorage
	case manager.IsLoadingFailed(err):
		return http.StatusInternalServerError
	}
	if he, ok := err.(HTTPError); ok {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}
