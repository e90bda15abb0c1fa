// Package cas implements content-addressed storage for completed run records.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/volthaus/meshsweep/internal/core/domain"
	"github.com/volthaus/meshsweep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RunStore = (*Store)(nil)

// Store implements ports.RunStore using a flat JSON file keyed by input hash.
// The full file is held in an in-memory cache and rewritten on every Put;
// run records are small relative to the solves that produce them.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.RunRecord
}

// NewStore creates a RunStore backed by the file at the given path.
// An absent file is an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.RunRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

// Get retrieves the run record for the given input hash.
// A missing record returns (nil, nil).
func (s *Store) Get(inputHash string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[inputHash]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record under its input hash and persists the store.
func (s *Store) Put(record domain.RunRecord) error {
	s.mu.Lock()
	s.cache[record.InputHash] = record
	s.mu.Unlock()

	return s.save()
}
