// Package catalog builds model descriptors by scanning a models directory.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"memd/pkg/types"
)

// model file extensions recognized by the scanner
var modelExts = map[string]bool{
	".gguf": true,
	".bin":  true,
	".onnx": true,
}

// LoadDir scans a directory for model files and builds descriptors from
// filenames. ID is the filename without extension; SizeBytes comes from the
// file on disk; capability tags are inferred from the name.
func LoadDir(dir string) ([]types.Model, error) {
	base, err := expandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var models []types.Model
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !modelExts[ext] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}
		id := strings.TrimSuffix(name, filepath.Ext(name))
		models = append(models, types.Model{
			ID:           id,
			Name:         id,
			Path:         filepath.Join(abs, name),
			SizeBytes:    info.Size(),
			Capabilities: capabilitiesFor(id),
			Family:       familyFor(id),
		})
	}
	return models, nil
}

// capabilitiesFor infers capability tags from a model name.
func capabilitiesFor(id string) []string {
	lower := strings.ToLower(id)
	if strings.Contains(lower, "whisper") {
		return []string{"transcribe", "translate"}
	}
	return []string{"transcribe"}
}

// familyFor infers the model family from a model name, empty if unknown.
func familyFor(id string) string {
	lower := strings.ToLower(id)
	for _, fam := range []string{"whisper", "parakeet"} {
		if strings.Contains(lower, fam) {
			return fam
		}
	}
	return ""
}

// expandHome expands a leading '~' to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	if path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	// handle cases like ~/models
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
