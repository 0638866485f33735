// Package statefile persists the desired package state as a JSON file.
package statefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/moree/internal/core/domain"
	"go.trai.ch/moree/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.StateStore.
// It remembers a digest of the bytes last read or written per path so that
// saving an unchanged state does not rewrite the file.
type Store struct {
	mu      sync.Mutex
	digests map[string]uint64
}

var _ ports.StateStore = (*Store)(nil)

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{digests: make(map[string]uint64)}
}

// Load reads the state file. A missing file yields an empty state.
func (s *Store) Load(path string) (domain.DesiredState, error) {
	//nolint:gosec // Path is resolved from user input or the XDG data directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewDesiredState(), nil
		}
		return nil, zerr.With(errors.Join(domain.ErrStateReadFailed, err), "path", path)
	}

	state, err := decode(data)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStateCorrupt, err), "path", path)
	}

	s.remember(path, data)
	return state, nil
}

// Save writes the state to a temporary file next to path and renames it into place.
func (s *Store) Save(path string, state domain.DesiredState) error {
	data, err := encode(state)
	if err != nil {
		return errors.Join(domain.ErrStateEncodeFailed, err)
	}

	if s.unchanged(path, data) {
		return nil
	}

	if err := writeAtomic(path, data); err != nil {
		return zerr.With(errors.Join(domain.ErrStateWriteFailed, err), "path", path)
	}

	s.remember(path, data)
	return nil
}

func decode(data []byte) (domain.DesiredState, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("file is empty")
	}

	var state domain.DesiredState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state == nil {
		state = domain.NewDesiredState()
	}
	return state, nil
}

func encode(state domain.DesiredState) ([]byte, error) {
	if state == nil {
		state = domain.NewDesiredState()
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *Store) remember(path string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.digests[path] = xxhash.Sum64(data)
}

func (s *Store) unchanged(path string, data []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.digests[path]
	if !ok || d != xxhash.Sum64(data) {
		return false
	}
	// The file may have been removed since it was read.
	_, err := os.Stat(path)
	return err == nil
}
