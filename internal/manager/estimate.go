package manager

// estimateInferenceMs returns a deterministic inference-time estimate for a
// model of the given size. It is a pure function used only to populate
// reporting, not a timing measurement. Bands follow the desktop
// application's tuning: small models answer in ~100ms, mid-size in ~200ms,
// and large models scale with size up to a 1s cap.
func estimateInferenceMs(sizeBytes int64) int64 {
	sizeMB := sizeBytes / 1_000_000
	switch {
	case sizeMB < 100:
		return 100
	case sizeMB < 500:
		return 200
	default:
		ms := (sizeMB / 500) * 100
		if ms > 1000 {
			ms = 1000
		}
		return ms
	}
}
