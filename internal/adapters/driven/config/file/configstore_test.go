package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "feedme")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestConfigStore_LoadsNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := `
[database]
dir = "/var/lib/feedme"

[units]
custom = ["scoop", "knob"]

[grocery]
workers = 4
subtract_pantry = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/feedme", store.GetString("database.dir"))
	assert.Equal(t, []string{"scoop", "knob"}, store.GetStringSlice("units.custom"))
	assert.Equal(t, 4, store.GetInt("grocery.workers"))
	assert.True(t, store.GetBool("grocery.subtract_pantry"))
}

func TestConfigStore_SetPersistsAsTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("grocery.workers", int64(8)))
	require.NoError(t, store.Set("units.custom", []string{"pinchlet"}))
	require.NoError(t, store.Set("database.dir", "/tmp/db"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[grocery]")
	assert.Contains(t, string(raw), "workers = 8")

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 8, reopened.GetInt("grocery.workers"))
	assert.Equal(t, []string{"pinchlet"}, reopened.GetStringSlice("units.custom"))
	assert.Equal(t, "/tmp/db", reopened.GetString("database.dir"))
}

func TestConfigStore_Set_InvalidKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", ".workers", "grocery."} {
		assert.Error(t, store.Set(key, 1), "key %q", key)
	}
}

func TestConfigStore_TypeMismatches(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("a", "hello"))
	require.NoError(t, store.Set("b", "12"))
	require.NoError(t, store.Set("c", "yes"))

	assert.Equal(t, 0, store.GetInt("a"))
	assert.Equal(t, 12, store.GetInt("b"))
	assert.False(t, store.GetBool("c"))
	assert.Nil(t, store.GetStringSlice("a"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_LoadMissingFileResets(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("grocery.workers", 2))

	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, store.Load())

	_, ok := store.Get("grocery.workers")
	assert.False(t, ok)
}

func TestNestMap(t *testing.T) {
	nested := nestMap(map[string]any{
		"a":     1,
		"a.b":   2,
		"x.y.z": "deep",
		"x.w":   true,
	})

	assert.Equal(t, 1, nested["a"])
	x, ok := nested["x"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, x["w"])
	y, ok := x["y"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "deep", y["z"])
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set("grocery.workers", i)
			_ = store.GetInt("grocery.workers")
		}()
	}
	wg.Wait()
}
