package manager

import "time"

// AccessRecorder receives last-access signals for loaded models. It is a
// collaborator concern (e.g., a persistent usage log), not bookkeeping owned
// by the manager: failures are logged and never fail the operation.
type AccessRecorder interface {
	Touch(modelID string, at time.Time) error
}

// noopAccess is the default; it drops access signals.
type noopAccess struct{}

func (noopAccess) Touch(string, time.Time) error { return nil }

// touchAccess forwards the last-access signal outside the lock.
func (m *Manager) touchAccess(modelID string, at time.Time) {
	if err := m.access.Touch(modelID, at); err != nil {
		m.log.Warn().Err(err).Str("model_id", modelID).Msg("access recorder touch failed")
	}
}
