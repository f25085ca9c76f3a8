// Package manager provides admission, accounting, and eviction for models
// loaded into a bounded memory budget. It is structured into small files by
// concern:
//
//   - manager.go: core Manager type, constructor, simple getters.
//   - config.go: ManagerConfig and package defaults; NewWithConfig applies defaults.
//   - types.go: internal state types (State, record).
//   - errors.go: error types and helpers (IsInsufficientMemory, IsModelFileNotFound, ...).
//   - helpers.go: small utilities (catalog lookup, descriptor validation).
//   - estimate.go: deterministic inference-time estimation for reporting.
//   - budget.go: budget arithmetic (total, fits, available).
//   - load.go: Load/LoadByID admission and bookkeeping.
//   - unload.go: Unload/UnloadAll reference-count draining.
//   - evict.go: LRU eviction and the OptimizeMemory sweep.
//   - report.go: queries and the MemoryReport/Status snapshots.
//   - access.go: AccessRecorder collaborator boundary (last-access signal).
//   - events.go / eventpub_memory.go: lifecycle event publishing.
//   - metrics.go: prometheus collectors for loads/evictions/usage.
//
// Runtimes:
//
//   - The RuntimeAdapter boundary (adapter_iface.go) abstracts the engine
//     that maps model bytes into memory. Default builds use a
//     bookkeeping-only adapter (adapter_llama_stub.go); build with
//     `-tags=llama` for the go-llama.cpp backed adapter (adapter_llama.go).
//
// Every mutating and aggregate-read operation runs whole inside the
// Manager's single mutex, so admission decisions are always consistent with
// registry state at the instant of decision. File existence checks and
// runtime byte loads happen outside the lock; the lock is re-taken only to
// commit or roll back bookkeeping.
package manager
