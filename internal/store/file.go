package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
)

const (
	fileName   = "devbreak.json"
	appDirName = "devbreak"
)

// ErrCorrupt is returned by the first read of a data file that is not a
// JSON object. The file is set aside with a .bak suffix and the store
// continues empty, so later saves replace it.
var ErrCorrupt = errors.New("corrupt store file")

// File keeps every key in one JSON object on disk. The file is read on
// first access and rewritten atomically on every Save.
type File struct {
	dir    string
	data   map[string]string
	loaded bool
}

// NewFile creates a File backend in dir. The directory is created on the
// first Save. Pass an empty string to use the default XDG state path.
func NewFile(dir string) *File {
	if dir == "" {
		dir = DefaultDir()
	}
	return &File{dir: dir}
}

// Path returns the full path to the data file.
func (f *File) Path() string {
	return filepath.Join(f.dir, fileName)
}

func (f *File) load() error {
	if f.loaded {
		return nil
	}
	raw, err := os.ReadFile(f.Path())
	if err != nil {
		if os.IsNotExist(err) {
			f.data = make(map[string]string)
			f.loaded = true
			return nil
		}
		return fmt.Errorf("reading store: %w", err)
	}
	data := make(map[string]string)
	if err := json.Unmarshal(raw, &data); err != nil {
		f.data = make(map[string]string)
		f.loaded = true
		if rerr := os.Rename(f.Path(), f.Path()+".bak"); rerr != nil {
			return fmt.Errorf("%w: %v (backup failed: %v)", ErrCorrupt, err, rerr)
		}
		return fmt.Errorf("%w: %v (moved to %s.bak)", ErrCorrupt, err, fileName)
	}
	f.data = data
	f.loaded = true
	return nil
}

// Load implements Backend.
func (f *File) Load(_ context.Context, key string) (string, bool, error) {
	if err := f.load(); err != nil {
		return "", false, err
	}
	v, ok := f.data[key]
	return v, ok, nil
}

// Save implements Backend using a temp-file-then-rename write. A corrupt
// file is replaced.
func (f *File) Save(_ context.Context, key, value string) error {
	if err := f.load(); err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}
	next := maps.Clone(f.data)
	next[key] = value

	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}
	raw, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling store: %w", err)
	}
	raw = append(raw, '\n')

	tmp, err := os.CreateTemp(f.dir, ".devbreak-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, f.Path()); err != nil {
		return fmt.Errorf("renaming store file: %w", err)
	}
	committed = true
	f.data = next
	return nil
}

// Close implements Backend.
func (f *File) Close() error { return nil }

// DefaultDir returns ~/.local/state/devbreak, respecting XDG_STATE_HOME.
func DefaultDir() string {
	if base := os.Getenv("XDG_STATE_HOME"); base != "" {
		return filepath.Join(base, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".local", "state", appDirName)
}
