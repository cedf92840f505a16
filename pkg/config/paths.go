package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is the config file looked up when --config is not given.
const DefaultFileName = "mongolog.yaml"

// ConfigDir returns the path to the mongolog config directory (~/.mongolog).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".mongolog"), nil
}

// DefaultPath returns the first existing config file among ./mongolog.yaml
// and ~/.mongolog/mongolog.yaml, or "" when neither exists.
func DefaultPath() string {
	candidates := []string{DefaultFileName}
	if dir, err := ConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, DefaultFileName))
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
