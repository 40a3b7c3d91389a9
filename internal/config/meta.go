package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"generate": "ctrl+g",
			"help":     []string{"f1", "ctrl+h"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "archive"
		case reflect.Int:
			switch fieldName {
			case "debounce_ms":
				return DefaultDebounceMS
			case "history_capacity":
				return DefaultHistoryCapacity
			case "max_log_files":
				return 1000
			case "request_timeout_seconds":
				return DefaultRequestTimeoutSeconds
			case "toast_duration_seconds":
				return DefaultToastDurationSeconds
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "db_path":
			return "~/.umlstudio/archive.db"
		case "endpoint":
			return DefaultEndpoint
		case "export_dir":
			return "~/.umlstudio/exports"
		case "mmdc_path":
			return DefaultMmdcPath
		default:
			return "example"
		}
	}

	return nil
}
