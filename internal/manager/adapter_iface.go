package manager

// RuntimeAdapter abstracts the engine that maps model bytes into memory.
// The manager only needs open and close; inference itself is a collaborator
// concern that lives behind the returned handle.
type RuntimeAdapter interface {
	// Open maps the model at modelPath and returns a handle owning the
	// mapped resources.
	Open(modelPath string) (RuntimeHandle, error)
}

// RuntimeHandle owns the resources of one mapped model.
type RuntimeHandle interface {
	// Close releases the mapped resources.
	Close() error
}
