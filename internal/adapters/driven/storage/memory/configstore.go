package memory

import (
	"maps"
	"sync"

	"github.com/custodia-labs/feedme/internal/adapters/driven/config/values"
	"github.com/custodia-labs/feedme/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore holds settings in a map. It backs tests and --ephemeral
// runs, where settings never touch disk.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates a config store seeded with dot-path keys such
// as "grocery.workers". Later seeds win.
func NewConfigStore(seed ...map[string]any) *ConfigStore {
	s := &ConfigStore{values: make(map[string]any)}
	for _, m := range seed {
		maps.Copy(s.values, m)
	}
	return s
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	return values.String(val)
}

func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	return values.Int(val)
}

func (s *ConfigStore) GetBool(key string) bool {
	val, _ := s.Get(key)
	return values.Bool(val)
}

func (s *ConfigStore) GetStringSlice(key string) []string {
	val, _ := s.Get(key)
	return values.Strings(val)
}

// Set stores a value. Keys follow the same rules as the TOML store.
func (s *ConfigStore) Set(key string, value any) error {
	if err := values.CheckKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Save is a no-op.
func (s *ConfigStore) Save() error { return nil }

// Load is a no-op.
func (s *ConfigStore) Load() error { return nil }

// Path reports ":memory:" since there is no backing file.
func (s *ConfigStore) Path() string { return ":memory:" }
