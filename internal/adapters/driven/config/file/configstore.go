package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/feedme/internal/adapters/driven/config/values"
	"github.com/custodia-labs/feedme/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// configFileName is the settings file inside the config directory.
const configFileName = "config.toml"

// ConfigStore keeps feedme settings in a TOML file.
// Keys are held flattened ("grocery.workers") and written back as nested
// tables, so [grocery] workers = 4 and grocery.workers name the same
// setting.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewConfigStore opens <configDir>/config.toml, creating the directory if
// needed. An empty configDir means ~/.feedme. A missing file is not an
// error; a malformed one is.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".feedme")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, configFileName),
		data:     make(map[string]any),
	}
	if err := s.Load(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", s.filePath, err)
	}
	return s, nil
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString returns "" for missing or non-string values.
func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	return values.String(val)
}

// GetInt reads TOML integers (int64) as well as numeric strings written
// by "feedme config set".
func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	return values.Int(val)
}

func (s *ConfigStore) GetBool(key string) bool {
	val, _ := s.Get(key)
	return values.Bool(val)
}

// GetStringSlice reads TOML arrays, which decode as []any.
func (s *ConfigStore) GetStringSlice(key string) []string {
	val, _ := s.Get(key)
	return values.Strings(val)
}

// Set stores a value and writes the file.
func (s *ConfigStore) Set(key string, value any) error {
	if err := values.CheckKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.write()
}

// Save writes the current settings to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write()
}

// write encodes the settings as nested tables. Caller holds mu.
func (s *ConfigStore) write() error {
	data, err := toml.Marshal(nestMap(s.data))
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Load re-reads the file. A missing file resets to empty settings.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		s.data = make(map[string]any)
		return nil
	}
	if err != nil {
		return err
	}

	var tables map[string]any
	if err := toml.Unmarshal(raw, &tables); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	s.data = make(map[string]any)
	flattenInto(s.data, tables, "")
	return nil
}

// Path returns the config file location.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// flattenInto copies tables into dst under dot-joined keys:
// {"grocery": {"workers": 4}} becomes {"grocery.workers": 4}.
func flattenInto(dst, tables map[string]any, prefix string) {
	for key, value := range tables {
		if prefix != "" {
			key = prefix + "." + key
		}
		if table, ok := value.(map[string]any); ok {
			flattenInto(dst, table, key)
			continue
		}
		dst[key] = value
	}
}

// nestMap reverses flattenInto. Keys are visited in sorted order; when a
// key is both a value and a table prefix ("a" and "a.b"), the value wins.
func nestMap(flat map[string]any) map[string]any {
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	root := make(map[string]any)
	for _, key := range keys {
		path := strings.Split(key, ".")
		table, ok := descend(root, path[:len(path)-1])
		if !ok {
			continue
		}
		leaf := path[len(path)-1]
		if _, isTable := table[leaf].(map[string]any); !isTable {
			table[leaf] = flat[key]
		}
	}
	return root
}

// descend walks to the table at path, creating missing tables. It fails
// when a segment is already a plain value.
func descend(table map[string]any, path []string) (map[string]any, bool) {
	for _, name := range path {
		existing, present := table[name]
		if !present {
			child := make(map[string]any)
			table[name] = child
			table = child
			continue
		}
		child, ok := existing.(map[string]any)
		if !ok {
			return nil, false
		}
		table = child
	}
	return table, true
}
