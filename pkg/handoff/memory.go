package handoff

import "sync"

// MemoryStore keeps hand-off state in memory.
type MemoryStore struct {
	mu    sync.Mutex
	state *State
	saves int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith creates a store already holding state.
func NewMemoryStoreWith(state State) *MemoryStore {
	return &MemoryStore{state: &state}
}

// Save implements Store.
func (s *MemoryStore) Save(state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state.StartedAt = state.StartedAt.UTC()
	s.state = &state
	s.saves++
	return nil
}

// Load implements Store.
func (s *MemoryStore) Load() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return State{}, errNoState
	}
	if s.state.HasComment() && s.state.StartedAt.IsZero() {
		return *s.state, errCorruptTimestamp
	}
	return *s.state, nil
}

// Exists implements Store.
func (s *MemoryStore) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != nil
}

// Saves returns how many times Save was called.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

var _ Store = (*MemoryStore)(nil)
