package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/umlstudio/umlstudio/internal/config"
	"github.com/umlstudio/umlstudio/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Endpoint    string           `help:"Base URL of the diagram generation service" default:"http://localhost:8000" env:"UMLSTUDIO_ENDPOINT"`
	DBPath      string           `help:"Path of the diagram archive database" env:"UMLSTUDIO_DB_PATH" name:"db-path"`

	Run         RunCmd         `cmd:"" help:"Start the diagram studio TUI (default)" default:"1"`
	Generate    GenerateCmd    `cmd:"generate" help:"Generate one diagram without the TUI"`
	Types       TypesCmd       `cmd:"types" help:"List the supported diagram types"`
	Suggestions SuggestionsCmd `cmd:"suggestions" help:"List the built-in description suggestions"`
	History     HistoryCmd     `cmd:"history" help:"Browse the diagram archive (list, show, delete, clear)"`
	Refresh     RefreshCmd     `cmd:"refresh" help:"Clear the generation service cache"`
	Serve       ServeCmd       `cmd:"serve" help:"Serve the TUI over SSH"`
	Settings    SettingsCmd    `cmd:"settings" help:"Manage settings (show, init, keys)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	logging.Logger.Debug("CLI configured",
		"endpoint", c.Endpoint,
		"db_path", c.DBPath,
		"log_file", logFilePath)

	// Container is created after logging so GORM's logger has somewhere to write
	container, err := NewContainer(c.settings, ContainerOptions{
		DBPath:   c.DBPath,
		Endpoint: c.Endpoint,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// applySettings resolves CLI flag > env var > settings.json > default.
// A settings value is only used when the flag is at its default and the env var is unset.
func (c *CLI) applySettings() {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("UMLSTUDIO_MAX_LOG_FILES"); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("UMLSTUDIO_DEBUG"); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	if c.Endpoint == "" || c.Endpoint == config.DefaultEndpoint {
		if _, hasEnv := os.LookupEnv("UMLSTUDIO_ENDPOINT"); !hasEnv {
			if c.settings.Endpoint != "" {
				c.Endpoint = c.settings.Endpoint
			}
		}
	}
	if c.Endpoint == "" {
		c.Endpoint = config.DefaultEndpoint
	}

	if c.DBPath == "" {
		c.DBPath = c.settings.DBPath
	}
	if c.DBPath == "" {
		c.DBPath = config.GetDBPath()
	}
	c.DBPath = config.ExpandPath(c.DBPath)
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
