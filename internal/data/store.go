package data

import (
	"sync"
	"sync/atomic"

	"ev-charging-dashboard/internal/model"
)

// Store owns the process-wide Dataset. Init loads the file exactly once;
// later calls return the same handle (or the same error) without touching
// the disk again. File changes after Init are not detected.
type Store struct {
	path string

	once sync.Once
	ds   atomic.Pointer[model.Dataset]
	err  error
}

// NewStore returns a Store for the sessions file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the configured sessions file path.
func (s *Store) Path() string {
	return s.path
}

// Init loads the dataset on first call.
func (s *Store) Init() (*model.Dataset, error) {
	s.once.Do(func() {
		var ds *model.Dataset
		ds, s.err = LoadCSV(s.path)
		s.ds.Store(ds)
	})
	return s.ds.Load(), s.err
}

// Dataset returns the loaded dataset, or nil if Init has not succeeded.
// It is safe to call while the first Init is still running.
func (s *Store) Dataset() *model.Dataset {
	return s.ds.Load()
}
