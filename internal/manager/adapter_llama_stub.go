//go:build !llama

package manager

// This file provides a no-CGO runtime adapter compiled when the 'llama'
// build tag is NOT set, keeping default builds and CI CGO-free. The manager
// then performs bookkeeping-only loads: admission, accounting, and eviction
// behave identically, no model bytes are actually mapped.

// runtimeAdapter is the bookkeeping-only default.
type runtimeAdapter struct{}

// NewRuntimeAdapter returns the build's default runtime adapter.
func NewRuntimeAdapter() RuntimeAdapter { return runtimeAdapter{} }

type runtimeHandle struct{}

func (runtimeAdapter) Open(modelPath string) (RuntimeHandle, error) {
	// No real resources without the 'llama' build tag.
	return runtimeHandle{}, nil
}

func (runtimeHandle) Close() error { return nil }
