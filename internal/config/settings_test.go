package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFrom_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "settings.json"))

	require.NoError(t, err)
	assert.True(t, settings.ArchiveEnabled())
	assert.Equal(t, 500*time.Millisecond, settings.DebounceWindow())
	assert.Equal(t, DefaultHistoryCapacity, settings.HistorySize())
	assert.Equal(t, 60*time.Second, settings.RequestTimeout())
	assert.Equal(t, 3*time.Second, settings.ToastDuration())
}

func TestLoadSettingsFrom_ParsesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	content := `{
		"archive": false,
		"debounce_ms": 0,
		"endpoint": "http://diagrams.internal:9000",
		"history_capacity": 10,
		"keys": {"generate": "ctrl+g", "help": ["f1", "?"]},
		"request_timeout_seconds": 5
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := LoadSettingsFrom(path)

	require.NoError(t, err)
	assert.False(t, settings.ArchiveEnabled())
	assert.Equal(t, time.Duration(0), settings.DebounceWindow())
	assert.Equal(t, "http://diagrams.internal:9000", settings.Endpoint)
	assert.Equal(t, 10, settings.HistorySize())
	assert.Equal(t, 5*time.Second, settings.RequestTimeout())
	assert.Equal(t, KeyBindingValue{"ctrl+g"}, settings.Keys["generate"])
	assert.Equal(t, KeyBindingValue{"f1", "?"}, settings.Keys["help"])
}

func TestLoadSettingsFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadSettingsFrom(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	capacity := 4
	in := &Settings{Endpoint: "http://example.test", HistoryCapacity: &capacity}

	require.NoError(t, SaveSettings(path, in))
	out, err := LoadSettingsFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "http://example.test", out.Endpoint)
	assert.Equal(t, 4, out.HistorySize())
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"generate", "help", "quit"}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{"nil config", nil, ""},
		{"valid", KeyBindingsConfig{"generate": {"ctrl+g"}}, ""},
		{"unknown name", KeyBindingsConfig{"bogus": {"x"}}, "unknown key binding"},
		{"empty value", KeyBindingsConfig{"help": {""}}, "empty value"},
		{"duplicate key", KeyBindingsConfig{"help": {"x"}, "quit": {"x"}}, "assigned to both"},
		{"empty list uses default", KeyBindingsConfig{"help": {}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	for _, name := range []string{"archive", "db_path", "debounce_ms", "endpoint", "export_dir", "history_capacity", "keys", "mmdc_path"} {
		assert.Contains(t, example, name)
	}
	assert.Equal(t, DefaultEndpoint, example["endpoint"])
	assert.Equal(t, true, example["archive"])
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "x", "y"), ExpandPath("~/x/y"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}

func TestGetHome_UsesEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UMLSTUDIO_HOME", dir)

	assert.Equal(t, dir, GetHome())
	assert.Equal(t, filepath.Join(dir, "archive.db"), GetDBPath())
	assert.Equal(t, filepath.Join(dir, "settings.json"), GetSettingsPath())
}
