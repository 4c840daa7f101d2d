// Package storage keeps the todo collection in a durable key/value slot and
// reloads it on startup.
package storage

import (
	"errors"
	"fmt"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Slot is a durable key/value cell.
type Slot interface {
	// Get returns the stored value; ok is false when the key was never set.
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Close() error
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the slot for backend, rooted at dir.
func Open(backend, dir string) (Slot, error) {
	switch backend {
	case "", BackendFile:
		return NewFileSlot(dir)
	case BackendSQLite:
		return OpenSQLiteSlot(dir)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}
