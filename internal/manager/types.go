package manager

import "time"

// State represents lifecycle state of a loaded record.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// record is the live bookkeeping entry for one resident model. It is owned
// exclusively by the Manager and must only be touched while Manager.mu is
// held; snapshots handed out of the lock are copies, never aliases.
type record struct {
	ModelID         string
	Name            string
	MemoryUsedBytes int64
	LoadedAt        time.Time
	LastUsedAt      time.Time
	RefCount        int
	EstInferenceMs  int64
	State           State
	Handle          RuntimeHandle
}
