package manager

import "fmt"

// insufficientMemoryError signals that the budget cannot accommodate a load
// even after one eviction attempt. Maps to 507 at the HTTP layer.
type insufficientMemoryError struct{ required, available int64 }

func (e insufficientMemoryError) Error() string {
	return fmt.Sprintf("insufficient memory: required %d bytes, available %d bytes", e.required, e.available)
}

// ErrInsufficientMemory constructs an insufficientMemoryError.
func ErrInsufficientMemory(required, available int64) error {
	return insufficientMemoryError{required: required, available: available}
}

// IsInsufficientMemory reports whether err indicates a budget rejection.
func IsInsufficientMemory(err error) bool {
	_, ok := err.(insufficientMemoryError)
	return ok
}

// modelFileNotFoundError signals that the model source could not be
// confirmed to exist. No state is mutated when this is returned.
type modelFileNotFoundError struct{ path string }

func (e modelFileNotFoundError) Error() string { return "model file not found: " + e.path }

// ErrModelFileNotFound constructs a modelFileNotFoundError.
func ErrModelFileNotFound(path string) error { return modelFileNotFoundError{path: path} }

// IsModelFileNotFound reports whether err indicates a missing model file.
func IsModelFileNotFound(err error) bool {
	_, ok := err.(modelFileNotFoundError)
	return ok
}

// loadingFailedError is the catch-all for runtime load failures after
// admission was granted; the registry entry is rolled back before return.
type loadingFailedError struct{ reason string }

func (e loadingFailedError) Error() string { return "loading failed: " + e.reason }

// ErrLoadingFailed constructs a loadingFailedError.
func ErrLoadingFailed(reason string) error { return loadingFailedError{reason: reason} }

// IsLoadingFailed reports whether err indicates a post-admission load failure.
func IsLoadingFailed(err error) bool {
	_, ok := err.(loadingFailedError)
	return ok
}

// invalidModelError signals a descriptor that fails basic sanity checks.
type invalidModelError struct{ reason string }

func (e invalidModelError) Error() string { return "invalid model: " + e.reason }

// ErrInvalidModel constructs an invalidModelError.
func ErrInvalidModel(reason string) error { return invalidModelError{reason: reason} }

// IsInvalidModel reports whether err indicates a rejected descriptor.
func IsInvalidModel(err error) bool {
	_, ok := err.(invalidModelError)
	return ok
}

// modelNotFoundError signals a model id absent from the catalog.
type modelNotFoundError struct{ id string }

func (e modelNotFoundError) Error() string { return "model not found: " + e.id }

// ErrModelNotFound constructs a modelNotFoundError.
func ErrModelNotFound(id string) error { return modelNotFoundError{id: id} }

// IsModelNotFound reports whether the error indicates an unknown model id.
func IsModelNotFound(err error) bool {
	_, ok := err.(modelNotFoundError)
	return ok
}
