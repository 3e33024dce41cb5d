package file

import (
	"os"
	"path/filepath"
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
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".zenith", "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	_, err := NewConfigStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewConfigStore_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("chart = [unterminated"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("chart.progression", "naive_date"))

	val, ok := store.Get("chart.progression")
	assert.True(t, ok)
	assert.Equal(t, "naive_date", val)
	assert.Equal(t, "naive_date", store.GetString("chart.progression"))
	assert.Empty(t, store.GetString("missing"))

	assert.Error(t, store.Set("", "x"))
}

func TestConfigStore_PersistsNestedTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("chart.house_systems", []string{"placidus", "whole_sign"}))
	require.NoError(t, store.Set("chart.node", "true"))
	require.NoError(t, store.Set("observer.latitude", 51.5074))
	require.NoError(t, store.Set("observer.elevation", 35))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[chart]")
	assert.Contains(t, string(raw), "[observer]")

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"placidus", "whole_sign"}, reloaded.GetStringSlice("chart.house_systems"))
	assert.Equal(t, "true", reloaded.GetString("chart.node"))

	lat, ok := reloaded.GetFloat("observer.latitude")
	assert.True(t, ok)
	assert.InDelta(t, 51.5074, lat, 1e-9)

	elev, ok := reloaded.GetFloat("observer.elevation")
	assert.True(t, ok)
	assert.InDelta(t, 35, elev, 1e-9)

	assert.Equal(t,
		[]string{"chart.house_systems", "chart.node", "observer.elevation", "observer.latitude"},
		reloaded.Keys())
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[chart]
house_systems = ["equal"]
progression = "solar_arc"

[ephemeris]
series_dir = "builtin"

[observer]
latitude = -33
longitude = 151.2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"equal"}, store.GetStringSlice("chart.house_systems"))
	assert.Equal(t, "builtin", store.GetString("ephemeris.series_dir"))
	lat, ok := store.GetFloat("observer.latitude")
	assert.True(t, ok)
	assert.InDelta(t, -33, lat, 1e-9)
	_, ok = store.GetFloat("chart.progression")
	assert.False(t, ok)
}

func TestConfigStore_Unset(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("observer.latitude", 10.0))
	require.NoError(t, store.Set("observer.longitude", 20.0))
	require.NoError(t, store.Unset("observer.latitude"))
	require.NoError(t, store.Unset("never.set"))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	_, ok := reloaded.Get("observer.latitude")
	assert.False(t, ok)
	assert.Equal(t, []string{"observer.longitude"}, reloaded.Keys())
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("chart.node", "mean"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFlattenMap(t *testing.T) {
	in := map[string]any{
		"chart": map[string]any{
			"node": "mean",
			"deep": map[string]any{"x": int64(1)},
		},
		"top": "v",
	}
	assert.Equal(t, map[string]any{
		"chart.node":   "mean",
		"chart.deep.x": int64(1),
		"top":          "v",
	}, flattenMap(in, ""))
}

func TestNestMap(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want map[string]any
	}{
		{
			name: "simple",
			in:   map[string]any{"chart.node": "mean", "chart.progression": "solar_arc", "top": 1},
			want: map[string]any{
				"chart": map[string]any{"node": "mean", "progression": "solar_arc"},
				"top":   1,
			},
		},
		{
			name: "value shadows table",
			in:   map[string]any{"a": 1, "a.b": 2},
			want: map[string]any{"a": 1, "a.b": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nestMap(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, flattenMap(got, ""))
		})
	}
}
