package types

// Model describes a model available for loading. It is immutable from the
// manager's point of view: identity is ID, and two descriptors with the
// same ID refer to the same model for caching purposes.
type Model struct {
	// Stable identifier for the model.
	// example: whisper-large-v3
	ID string `json:"id" example:"whisper-large-v3"`
	// Human-friendly name.
	// example: Whisper Large v3
	Name string `json:"name" example:"Whisper Large v3"`
	// Absolute path to the model file on disk.
	// example: /home/user/models/whisper-large-v3.gguf
	Path string `json:"path" example:"/home/user/models/whisper-large-v3.gguf"`
	// Size of the model file in bytes; drives budget accounting.
	// example: 1500000000
	SizeBytes int64 `json:"size_bytes" example:"1500000000"`
	// Capability tags (e.g., transcribe, translate).
	// example: ["transcribe","translate"]
	Capabilities []string `json:"capabilities,omitempty" example:"transcribe,translate"`
	// Optional family (e.g., whisper, parakeet).
	// example: whisper
	Family string `json:"family,omitempty" example:"whisper"`
}

// HasCapability reports whether the descriptor carries the given tag.
func (m Model) HasCapability(tag string) bool {
	for _, c := range m.Capabilities {
		if c == tag {
			return true
		}
	}
	return false
}
