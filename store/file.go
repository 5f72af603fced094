package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirStore keeps each key in its own file under a directory.
type DirStore struct {
	dir string
}

// OpenDir opens (creating if needed) a directory-backed store.
func OpenDir(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create store directory %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) path(key string) string { return filepath.Join(s.dir, key+".json") }

func (s *DirStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read key %q: %w", key, err)
	}
	return data, nil
}

func (s *DirStore) Put(key string, value []byte) error {
	// Write then rename so a crash never leaves a half-written value.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("cannot write key %q: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("cannot commit key %q: %w", key, err)
	}
	return nil
}

func (s *DirStore) Close() error { return nil }
