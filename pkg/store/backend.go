package store

import (
	"errors"
	"fmt"
)

// EntriesKey is the storage key holding the serialized journal.
const EntriesKey = "gratitude_entries"

// ErrNotFound is returned by a Backend when a key has never been written.
var ErrNotFound = errors.New("store: key not found")

// Backend is durable key/value storage.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	// Dir is the directory holding the backend's files.
	Dir() string
	// Owns reports whether a file under Dir belongs to the backend's data.
	Owns(path string) bool
	Close() error
}

// OpenBackend opens the backend selected by cfg.
func OpenBackend(cfg Config) (Backend, error) {
	if cfg.BasePath() == "" {
		return nil, errors.New("store: base path unknown")
	}
	switch cfg.Driver() {
	case "", DriverDiskv:
		return NewDiskv(cfg.BasePath())
	case DriverSQLite:
		return NewSQLite(cfg.BasePath())
	default:
		return nil, fmt.Errorf("store: unknown storage driver %q", cfg.Driver())
	}
}
