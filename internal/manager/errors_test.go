package manager

import (
	"errors"
	"testing"
)

func TestErrorPredicates(t *testing.T) {
	cases := []struct {
		err  error
		pred func(error) bool
	}{
		{ErrInsufficientMemory(400, 300), IsInsufficientMemory},
		{ErrModelFileNotFound("/tmp/x.gguf"), IsModelFileNotFound},
		{ErrLoadingFailed("runtime refused"), IsLoadingFailed},
		{ErrInvalidModel("empty model id"), IsInvalidModel},
		{ErrModelNotFound("ghost"), IsModelNotFound},
	}
	preds := []func(error) bool{
		IsInsufficientMemory, IsModelFileNotFound, IsLoadingFailed, IsInvalidModel, IsModelNotFound,
	}
	for i, c := range cases {
		if !c.pred(c.err) {
			t.Fatalf("case %d: predicate rejected its own error %v", i, c.err)
		}
		for j, p := range preds {
			if i != j && p(c.err) {
				t.Fatalf("case %d: predicate %d matched foreign error %v", i, j, c.err)
			}
		}
		if c.pred(errors.New("generic")) {
			t.Fatalf("case %d: predicate matched a generic error", i)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	if got := ErrModelFileNotFound("/m/x.gguf").Error(); got != "model file not found: /m/x.gguf" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := ErrInvalidModel("negative size").Error(); got != "invalid model: negative size" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := ErrModelNotFound("ghost").Error(); got != "model not found: ghost" {
		t.Fatalf("unexpected message: %q", got)
	}
}
