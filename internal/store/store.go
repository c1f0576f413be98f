// Package store persists best scores, time played, preferences and settings
// as string blobs in a key-value backend. Callers use KV, which never fails:
// backend errors are logged and reads fall back to the caller's default.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Storage keys.
const (
	KeyGames       = "devbreak-games"
	KeyPreferences = "devbreak-preferences"
	KeyTheme       = "devbreak-theme"
	KeySettings    = "devbreak-settings"
)

// Drivers accepted by Open.
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown store driver")

// KV is the key-value surface the rest of the program uses.
type KV interface {
	Get(key, def string) string
	Set(key, value string)
}

// Backend is a fallible key-value store.
type Backend interface {
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
	Close() error
}

// Open opens the backend for driver. An empty path selects the default
// location for file-based drivers.
func Open(driver, path string) (Backend, error) {
	switch driver {
	case DriverJSON, "":
		return NewFile(path), nil
	case DriverSQLite:
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

// Safe adapts a Backend to KV. A nil backend behaves as an empty store
// that drops writes.
type Safe struct {
	backend Backend
	log     *log.Logger
	failed  []func(op, key string, err error)
}

var _ KV = (*Safe)(nil)

// NewSafe wraps b. logger may be nil.
func NewSafe(b Backend, logger *log.Logger) *Safe {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Safe{backend: b, log: logger}
}

// OnFailure registers fn to be told about every swallowed backend error.
// op is "read" or "write".
func (s *Safe) OnFailure(fn func(op, key string, err error)) {
	if s != nil {
		s.failed = append(s.failed, fn)
	}
}

func (s *Safe) fail(op, key string, err error) {
	s.log.Warn("store "+op+" failed", "key", key, "err", err)
	for _, fn := range s.failed {
		fn(op, key, err)
	}
}

// Get returns the value stored at key, or def.
func (s *Safe) Get(key, def string) string {
	if s == nil || s.backend == nil {
		return def
	}
	v, ok, err := s.backend.Load(context.Background(), key)
	if err != nil {
		s.fail("read", key, err)
		return def
	}
	if !ok {
		return def
	}
	return v
}

// Set stores value at key.
func (s *Safe) Set(key, value string) {
	if s == nil || s.backend == nil {
		return
	}
	if err := s.backend.Save(context.Background(), key, value); err != nil {
		s.fail("write", key, err)
	}
}

// Close releases the backend.
func (s *Safe) Close() error {
	if s == nil || s.backend == nil {
		return nil
	}
	return s.backend.Close()
}
