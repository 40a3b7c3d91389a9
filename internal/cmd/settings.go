package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/umlstudio/umlstudio/internal/config"
	"github.com/umlstudio/umlstudio/internal/logging"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Init SettingsInitCmd `cmd:"init" help:"Write a settings file with the default values"`
	Keys SettingsKeysCmd `cmd:"keys" help:"Manage keyboard shortcuts (list, set)"`
	Show SettingsShowCmd `cmd:"show" help:"Show the effective settings" default:"1"`
}

// SettingsShowCmd displays the effective settings
type SettingsShowCmd struct {
	Example bool   `help:"Show an example settings.json instead of the effective values"`
	Format  string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsInitCmd writes a settings file populated with defaults
type SettingsInitCmd struct {
	Force bool `help:"Overwrite an existing settings file" short:"f"`
}

type settingEntry struct {
	Key   string
	Value any
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()

	if s.Example {
		return s.printExample(settingsFile)
	}

	entries := effectiveSettings(cli)

	if s.Format == "json" {
		values := make(map[string]any, len(entries))
		for _, e := range entries {
			values[e.Key] = e.Value
		}
		output := map[string]any{
			"settings_file": settingsFile,
			"effective":     values,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Setting\tValue")
	fmt.Fprintln(w, "───────\t─────")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%v\n", e.Key, e.Value)
	}
	w.Flush()
	return nil
}

func (s *SettingsShowCmd) printExample(settingsFile string) error {
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure umlstudio.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}

// effectiveSettings lists the values in use after flags, env vars and settings.json
func effectiveSettings(cli *CLI) []settingEntry {
	settings := cli.settings
	exportDir := config.GetExportDir()
	if cli.Container != nil {
		settings = cli.Container.Settings()
		exportDir = cli.Container.Exporter.OutputDir()
	}

	mmdcPath := config.DefaultMmdcPath
	if settings != nil && settings.MmdcPath != "" {
		mmdcPath = settings.MmdcPath
	}

	return []settingEntry{
		{Key: "archive", Value: settings.ArchiveEnabled()},
		{Key: "db_path", Value: cli.DBPath},
		{Key: "debounce_ms", Value: settings.DebounceWindow().Milliseconds()},
		{Key: "debug", Value: cli.Debug},
		{Key: "endpoint", Value: cli.Endpoint},
		{Key: "export_dir", Value: exportDir},
		{Key: "history_capacity", Value: settings.HistorySize()},
		{Key: "max_log_files", Value: cli.MaxLogFiles},
		{Key: "mmdc_path", Value: mmdcPath},
		{Key: "request_timeout_seconds", Value: int(settings.RequestTimeout().Seconds())},
		{Key: "toast_duration_seconds", Value: int(settings.ToastDuration().Seconds())},
	}
}

// Run executes the init command
func (s *SettingsInitCmd) Run() error {
	path := config.GetSettingsPath()

	if _, err := os.Stat(path); err == nil && !s.Force {
		return fmt.Errorf("settings file already exists at %s (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check settings file: %w", err)
	}

	if err := config.SaveSettings(path, defaultSettings()); err != nil {
		return err
	}

	logging.Logger.Info("Settings file written", "path", path)
	fmt.Printf("✓ Wrote default settings to %s\n", path)
	return nil
}

// defaultSettings returns a Settings with every optional value spelled out
func defaultSettings() *config.Settings {
	archive := true
	debounce := config.DefaultDebounceMS
	debug := false
	historyCapacity := config.DefaultHistoryCapacity
	maxLogFiles := logging.DefaultMaxLogFiles
	requestTimeout := config.DefaultRequestTimeoutSeconds
	toastDuration := config.DefaultToastDurationSeconds

	return &config.Settings{
		Archive:               &archive,
		DebounceMS:            &debounce,
		Debug:                 &debug,
		Endpoint:              config.DefaultEndpoint,
		HistoryCapacity:       &historyCapacity,
		MaxLogFiles:           &maxLogFiles,
		MmdcPath:              config.DefaultMmdcPath,
		RequestTimeoutSeconds: &requestTimeout,
		ToastDurationSeconds:  &toastDuration,
	}
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
