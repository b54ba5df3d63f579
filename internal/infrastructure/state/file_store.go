// Package state implements the durable client-side storage port as one JSON
// file per namespace on an afero filesystem (the OS fs in production, memfs
// in tests).
package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileStore persists namespaced records under dir as <namespace>.json.
// Writes are synchronous; a missing or malformed record loads as absent.
type FileStore struct {
	fs  afero.Fs
	dir string
}

// NewFileStore builds the store and makes sure dir exists.
func NewFileStore(fs afero.Fs, dir string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{fs: fs, dir: dir}, nil
}

func (s *FileStore) path(namespace string) string {
	return filepath.Join(s.dir, namespace+".json")
}

// Save marshals v and writes the namespace file.
func (s *FileStore) Save(namespace string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path(namespace), b, 0o644)
}

// Load reads the namespace file into v. Missing files and unparseable
// content both report found=false: malformed persisted state is treated as
// absence, never as an error.
func (s *FileStore) Load(namespace string, v any) (bool, error) {
	b, err := afero.ReadFile(s.fs, s.path(namespace))
	if err != nil {
		return false, nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, nil
	}
	return true, nil
}

// Delete removes the namespace file; missing is not an error.
func (s *FileStore) Delete(namespace string) error {
	err := s.fs.Remove(s.path(namespace))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
