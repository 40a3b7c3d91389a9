package config

import (
	"os"
	"path/filepath"
)

// GetHome returns UMLSTUDIO_HOME or the ~/.umlstudio default
func GetHome() string {
	home := os.Getenv("UMLSTUDIO_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".umlstudio"
		}
		return filepath.Join(homeDir, ".umlstudio")
	}
	return ExpandPath(home)
}

// GetDBPath returns $UMLSTUDIO_HOME/archive.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "archive.db")
}

// GetExportDir returns $UMLSTUDIO_HOME/exports
func GetExportDir() string {
	return filepath.Join(GetHome(), "exports")
}

// GetSettingsPath returns $UMLSTUDIO_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetSSHDir returns $UMLSTUDIO_HOME/ssh, where the server host key lives
func GetSSHDir() string {
	return filepath.Join(GetHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
