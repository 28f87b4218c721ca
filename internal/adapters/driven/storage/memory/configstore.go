package memory

import (
	"maps"
	"sync"

	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map. Nothing is written to disk, so Save
// and Load have nothing to do.
type ConfigStore struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewConfigStore creates an empty store.
func NewConfigStore() *ConfigStore {
	return NewConfigStoreFrom(nil)
}

// NewConfigStoreFrom creates a store holding a copy of entries, keyed by
// dotted setting names.
func NewConfigStoreFrom(entries map[string]any) *ConfigStore {
	s := &ConfigStore{entries: make(map[string]any, len(entries))}
	maps.Copy(s.entries, entries)
	return s
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *ConfigStore) GetString(key string) string { return typed[string](s, key) }

func (s *ConfigStore) GetBool(key string) bool { return typed[bool](s, key) }

// GetInt accepts the integer shapes values arrive in: int from Set, int64
// from TOML and float64 from JSON.
func (s *ConfigStore) GetInt(key string) int {
	v, _ := s.Get(key)
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
	return nil
}

func (s *ConfigStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

func (s *ConfigStore) Save() error { return nil }

func (s *ConfigStore) Load() error { return nil }

// Path reports ":memory:" in place of a file.
func (s *ConfigStore) Path() string { return ":memory:" }

// typed returns the value at key if it has type T, else T's zero value.
func typed[T any](s *ConfigStore, key string) T {
	v, _ := s.Get(key)
	t, _ := v.(T)
	return t
}
