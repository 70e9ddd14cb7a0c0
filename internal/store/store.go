// Package store provides the key-value backends that persist chosen section
// dimensions between runs.
package store

import (
	"fmt"
	"strings"
)

// DefaultSection groups every key, mirroring the single [config] table of
// the dimension file.
const DefaultSection = "config"

// KV is a persistent string key-value store.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

// Open selects a backend from a location string:
//
//	memory:            in-process map, forgotten on exit
//	sqlite:<path>      SQLite database
//	<path>.toml|yaml|json   viper-managed file
func Open(location string) (KV, error) {
	switch {
	case location == "memory:" || location == "memory":
		return NewMemory(), nil
	case strings.HasPrefix(location, "sqlite:"):
		path := strings.TrimPrefix(location, "sqlite:")
		if path == "" {
			return nil, fmt.Errorf("sqlite store requires a path")
		}
		return OpenSQLite(path, DefaultSection)
	case location == "":
		return nil, fmt.Errorf("empty store location")
	default:
		return OpenFile(location, DefaultSection)
	}
}
