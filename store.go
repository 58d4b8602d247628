package thrifthunter

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// DefaultStatePath is the state file the dashboard reads and rewrites.
const DefaultStatePath = "titan.json"

// Store persists the whole AppState to a single JSON file, last write wins.
// There is exactly one reader and one writer (this process); the mutex only
// serializes save calls within it.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore returns a store backed by the given file path.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultStatePath
	}
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the state file and reconstructs the session record.
//
// A missing file is a normal first run and yields the defaults. An unreadable
// or corrupt file also yields the defaults, never an error, but the degraded
// reason is returned (and logged) so callers and tests can observe that the
// fallback path was taken.
func (s *Store) Load() (state AppState, degraded string) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return DefaultState(), ""
	}
	if err != nil {
		degraded = fmt.Sprintf("state file %q unreadable: %v", s.path, err)
		log.Printf("warning: %s, starting from defaults", degraded)
		return DefaultState(), degraded
	}
	state, err = DecodeState(data)
	if err != nil {
		degraded = fmt.Sprintf("state file %q corrupt: %v", s.path, err)
		log.Printf("warning: %s, starting from defaults", degraded)
		return DefaultState(), degraded
	}
	return state, ""
}

// Save rewrites the whole state file. The caller treats a failure as
// non-fatal but it is surfaced here so it can be logged or tested.
func (s *Store) Save(state AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := EncodeState(state)
	if err != nil {
		return fmt.Errorf("could not encode state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("could not write state file %q: %w", s.path, err)
	}
	return nil
}

// Reset deletes the backing file. A missing file is not an error.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not remove state file %q: %w", s.path, err)
	}
	return nil
}
