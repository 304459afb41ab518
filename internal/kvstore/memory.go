package kvstore

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore is an in-process Store. GetErr and SetErr, when set, are
// returned by every call and let callers exercise failure paths.
type MemoryStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	writes int

	GetErr error
	SetErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, name string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	v, ok := s.data[name]
	return slices.Clone(v), ok, nil
}

func (s *MemoryStore) Set(_ context.Context, name string, snapshot []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.data[name] = slices.Clone(snapshot)
	s.writes++
	return nil
}

// Writes returns the number of successful Set calls.
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Fail makes subsequent Get and Set calls return the given errors.
func (s *MemoryStore) Fail(getErr, setErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.GetErr = getErr
	s.SetErr = setErr
}
