package cmd

import (
	"context"
	"fmt"

	adapterclipboard "github.com/umlstudio/umlstudio/internal/adapters/clipboard"
	adapterexporter "github.com/umlstudio/umlstudio/internal/adapters/exporter"
	adaptergenerator "github.com/umlstudio/umlstudio/internal/adapters/generator"
	adapterrenderer "github.com/umlstudio/umlstudio/internal/adapters/renderer"
	adapterstorage "github.com/umlstudio/umlstudio/internal/adapters/storage"
	"github.com/umlstudio/umlstudio/internal/config"
	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/logging"
	"github.com/umlstudio/umlstudio/internal/ports"
	"github.com/umlstudio/umlstudio/internal/services"
	"github.com/umlstudio/umlstudio/internal/ui"
)

// ContainerOptions carries the values resolved from flags and env vars
type ContainerOptions struct {
	DBPath   string // Empty disables the archive
	Endpoint string
}

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Clipboard *adapterclipboard.SystemClipboard
	Exporter  *adapterexporter.MermaidCLIExporter
	Generator *adaptergenerator.HTTPGenerator
	Renderer  *adapterrenderer.TerminalRenderer

	// Services
	ArchiveService *services.ArchiveService // nil when archiving is disabled

	// Internal
	archiveRepo ports.ArchiveRepository
	settings    *config.Settings
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings, opts ContainerOptions) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	exportDir := settings.ExportDir
	if exportDir == "" {
		exportDir = config.GetExportDir()
	}
	exporter, err := adapterexporter.NewMermaidCLIExporter(adapterexporter.Options{
		MmdcPath:  settings.MmdcPath,
		OutputDir: exportDir,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create exporter: %w", err)
	}

	c := &Container{
		Clipboard: adapterclipboard.NewSystemClipboard(),
		Exporter:  exporter,
		Generator: adaptergenerator.NewHTTPGenerator(opts.Endpoint, settings.RequestTimeout()),
		Renderer:  adapterrenderer.NewTerminalRenderer(adapterrenderer.Options{}),
		settings:  settings,
	}

	if settings.ArchiveEnabled() && opts.DBPath != "" {
		repo, err := adapterstorage.NewSQLiteRepository(opts.DBPath)
		if err != nil {
			return nil, err
		}
		c.archiveRepo = repo
		c.ArchiveService = services.NewArchiveService(repo)
	} else {
		logging.Logger.Info("Diagram archive disabled")
	}

	return c, nil
}

// Settings returns the settings the container was built from
func (c *Container) Settings() *config.Settings {
	return c.settings
}

// NewSessionController creates a controller for one authoring session.
// notifier and onStateChange may be nil.
func (c *Container) NewSessionController(
	sessionID string,
	notifier ports.Notifier,
	onStateChange func(domain.SessionState),
	target ports.RenderTarget,
) *services.SessionController {
	params := services.SessionControllerParams{
		Clipboard:       c.Clipboard,
		DebounceWindow:  c.settings.DebounceWindow(),
		Exporter:        c.Exporter,
		Generator:       c.Generator,
		HistoryCapacity: c.settings.HistorySize(),
		Notifier:        notifier,
		OnStateChange:   onStateChange,
		RenderTarget:    target,
		Renderer:        c.Renderer,
		RequestTimeout:  c.settings.RequestTimeout(),
		SessionID:       sessionID,
	}
	if c.archiveRepo != nil {
		params.Archive = c.archiveRepo
	}
	return services.NewSessionController(params)
}

// NewTUIModel builds the root TUI model with its own session controller.
// When initial is set the session opens with that diagram loaded.
// cleanup releases the session and must run once the program exits.
func (c *Container) NewTUIModel(
	ctx context.Context,
	sessionID string,
	devMode bool,
	initial *domain.HistoryEntry,
) (*ui.Model, func(), error) {
	if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}

	events := ui.NewEventBridge()
	target := adapterrenderer.NewBufferTarget()
	controller := c.NewSessionController(sessionID, events, events.StateChanged, target)

	if initial != nil {
		if err := controller.LoadFromHistory(ctx, *initial); err != nil {
			controller.Close()
			events.Close()
			return nil, nil, err
		}
	}

	model := ui.NewModel(ui.ModelParams{
		Controller:      controller,
		DevMode:         devMode,
		Events:          events,
		ExportDir:       c.Exporter.OutputDir(),
		HistoryCapacity: c.settings.HistorySize(),
		KeyBindings:     c.settings.Keys,
		Preview:         target,
		Refresher:       c.Generator,
		ToastDuration:   c.settings.ToastDuration(),
	})

	cleanup := func() {
		controller.Close()
		model.Close()
	}
	return model, cleanup, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.archiveRepo != nil {
		return c.archiveRepo.Close()
	}
	return nil
}
