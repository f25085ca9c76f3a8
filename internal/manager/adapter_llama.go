//go:build llama

package manager

import (
	"errors"
	"strings"

	llama "github.com/go-skynet/go-llama.cpp"
)

// runtimeAdapter maps model bytes in-process via go-llama.cpp.
type runtimeAdapter struct {
	ctxSize int
}

// NewRuntimeAdapter returns the build's default runtime adapter.
func NewRuntimeAdapter() RuntimeAdapter { return runtimeAdapter{ctxSize: 512} }

type runtimeHandle struct {
	model *llama.LLama
}

func (a runtimeAdapter) Open(modelPath string) (RuntimeHandle, error) {
	if strings.TrimSpace(modelPath) == "" {
		return nil, errors.New("model path is empty")
	}
	m, err := llama.New(modelPath, llama.SetContext(a.ctxSize))
	if err != nil {
		return nil, err
	}
	return &runtimeHandle{model: m}, nil
}

func (h *runtimeHandle) Close() error {
	if h.model != nil {
		h.model.Free()
		h.model = nil
	}
	return nil
}
