package config

import "sync/atomic"

// Store publishes the live configuration. A reload swaps the whole pointer,
// so concurrent readers always observe a complete snapshot and never a
// half-written struct. Snapshots are immutable once published.
type Store struct {
	ptr atomic.Pointer[Config]
}

func NewStore(cfg *Config) *Store {
	s := &Store{}
	s.ptr.Store(cfg)
	return s
}

// Get returns the current snapshot. Callers must not mutate it.
func (s *Store) Get() *Config {
	return s.ptr.Load()
}

// Set publishes a new snapshot.
func (s *Store) Set(cfg *Config) {
	s.ptr.Store(cfg)
}
