// Package memory implements an in-process slot store. It backs ephemeral
// runs (backend "memory") and serves as the test double for the persistence
// port, including simulated backend failures.
package memory

import "github.com/dukaforge/storekeep/pkg/types"

// Store implements types.SlotStore with a plain map.
//
// FailReads and FailWrites simulate an unavailable backend: when set, Get and
// Set return ErrStoreDetached without touching the map. Tests use these to
// exercise the default-fallback and swallowed-write paths.
type Store struct {
	attached   bool
	slots      map[string][]byte
	FailReads  bool
	FailWrites bool
}

// NewStore returns an attached, empty in-memory store. The zero Config
// lifecycle (Attach/Detach) is still honored for callers that drive it like
// any other backend.
func NewStore() *Store {
	return &Store{
		attached: true,
		slots:    make(map[string][]byte),
	}
}

// Attach marks the store attached. Returns ErrAlreadyAttached when attached.
func (s *Store) Attach(config types.Config) error {
	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if s.slots == nil {
		s.slots = make(map[string][]byte)
	}
	s.attached = true
	return nil
}

// Detach marks the store detached. Slot contents are kept so a re-Attach in
// the same process observes them, mirroring a durable backend. Idempotent.
func (s *Store) Detach() error {
	s.attached = false
	return nil
}

// Get returns the value stored in the named slot.
func (s *Store) Get(key string) ([]byte, error) {
	if !s.attached || s.FailReads {
		return nil, types.ErrStoreDetached
	}
	v, ok := s.slots[key]
	if !ok {
		return nil, types.ErrSlotNotFound
	}
	return v, nil
}

// Set writes the value into the named slot.
func (s *Store) Set(key string, value []byte) error {
	if !s.attached || s.FailWrites {
		return types.ErrStoreDetached
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.slots[key] = cp
	return nil
}
