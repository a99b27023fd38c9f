// Package storage persists small pieces of app state as key-value pairs.
// The tracker state lives under a single key as one JSON blob; independent
// preferences (like the UI theme) get their own keys.
package storage

import (
	"os"
	"path/filepath"
)

// Fixed keys used by the app.
const (
	StateKey = "tracker"
	ThemeKey = "theme"
)

// KV is a minimal durable key-value store. Implementations are synchronous:
// a Set that returns nil has been written through.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

var (
	_ KV = (*SQLite)(nil)
	_ KV = (*Memory)(nil)
)

// DefaultDir returns the app data directory, creating it if needed.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	base := filepath.Join(home, ".local", "share", "stint")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", err
	}
	return base, nil
}
