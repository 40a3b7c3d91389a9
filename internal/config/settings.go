package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults shared by the CLI flags and the settings file
const (
	DefaultDebounceMS            = 500
	DefaultEndpoint              = "http://localhost:8000"
	DefaultHistoryCapacity       = 6
	DefaultMmdcPath              = "mmdc"
	DefaultRequestTimeoutSeconds = 60
	DefaultToastDurationSeconds  = 3
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "generate", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track all keys to detect duplicates
	keyToAction := make(map[string]string)

	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of $UMLSTUDIO_HOME/settings.json
type Settings struct {
	Archive               *bool             `json:"archive,omitempty"`
	DBPath                string            `json:"db_path,omitempty"`
	DebounceMS            *int              `json:"debounce_ms,omitempty"`
	Debug                 *bool             `json:"debug,omitempty"`
	Endpoint              string            `json:"endpoint,omitempty"`
	ExportDir             string            `json:"export_dir,omitempty"`
	HistoryCapacity       *int              `json:"history_capacity,omitempty"`
	Keys                  KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles           *int              `json:"max_log_files,omitempty"`
	MmdcPath              string            `json:"mmdc_path,omitempty"`
	RequestTimeoutSeconds *int              `json:"request_timeout_seconds,omitempty"`
	ToastDurationSeconds  *int              `json:"toast_duration_seconds,omitempty"`
}

// ArchiveEnabled reports whether successful generations are archived (default true)
func (s *Settings) ArchiveEnabled() bool {
	if s == nil || s.Archive == nil {
		return true
	}
	return *s.Archive
}

// DebounceWindow returns the submission coalescing window
func (s *Settings) DebounceWindow() time.Duration {
	ms := DefaultDebounceMS
	if s != nil && s.DebounceMS != nil && *s.DebounceMS >= 0 {
		ms = *s.DebounceMS
	}
	return time.Duration(ms) * time.Millisecond
}

// HistorySize returns the session history capacity
func (s *Settings) HistorySize() int {
	if s != nil && s.HistoryCapacity != nil && *s.HistoryCapacity > 0 {
		return *s.HistoryCapacity
	}
	return DefaultHistoryCapacity
}

// RequestTimeout returns the timeout for one generation request
func (s *Settings) RequestTimeout() time.Duration {
	secs := DefaultRequestTimeoutSeconds
	if s != nil && s.RequestTimeoutSeconds != nil && *s.RequestTimeoutSeconds > 0 {
		secs = *s.RequestTimeoutSeconds
	}
	return time.Duration(secs) * time.Second
}

// ToastDuration returns how long notifications stay on screen
func (s *Settings) ToastDuration() time.Duration {
	secs := DefaultToastDurationSeconds
	if s != nil && s.ToastDurationSeconds != nil && *s.ToastDurationSeconds > 0 {
		secs = *s.ToastDurationSeconds
	}
	return time.Duration(secs) * time.Second
}

// LoadSettings loads settings from $UMLSTUDIO_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}
	if settings.ExportDir != "" {
		settings.ExportDir = ExpandPath(settings.ExportDir)
	}
	if settings.MmdcPath != "" {
		settings.MmdcPath = ExpandPath(settings.MmdcPath)
	}

	return &settings, nil
}

// SaveSettings writes settings to path, creating the parent directory if needed
func SaveSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
