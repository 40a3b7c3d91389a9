package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	adapterrenderer "github.com/umlstudio/umlstudio/internal/adapters/renderer"
	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/logging"
)

// GenerateCmd runs one headless submission through a session controller
type GenerateCmd struct {
	Copy        bool     `help:"Copy the definition to the clipboard"`
	Description string   `arg:"" help:"What the diagram should show (1-500 characters)"`
	Export      []string `help:"Export the diagram as images (png, jpeg)" sep:","`
	Format      string   `help:"Output format: text or json" enum:"text,json" default:"text"`
	Highlight   bool     `help:"Print the highlighted, line-numbered definition"`
	Type        string   `help:"Diagram type (see 'umlstudio types')" short:"t" default:"classDiagram"`
}

type generateResult struct {
	Definition  string   `json:"definition"`
	DiagramType string   `json:"diagram_type"`
	Exports     []string `json:"exports,omitempty"`
	Rendered    string   `json:"-"`
	SessionID   string   `json:"session_id"`
}

// logNotifier records notifications in the debug log; errors reach the user as return values
type logNotifier struct{}

func (logNotifier) Notify(n domain.Notification) {
	logging.Logger.Info("Notification", "kind", n.Kind, "message", n.Message)
}

// Run executes the generate command
func (g *GenerateCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := g.execute(ctx, cli.Container)
	if err != nil {
		return withUsageHint(err)
	}

	if g.Format == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if g.Highlight {
		fmt.Println(result.Rendered)
	} else {
		fmt.Println(result.Definition)
	}
	for _, path := range result.Exports {
		fmt.Fprintf(os.Stderr, "✓ Exported %s\n", path)
	}
	if g.Copy {
		fmt.Fprintln(os.Stderr, "✓ Copied to clipboard")
	}
	return nil
}

// withUsageHint points rejected input at the command help
func withUsageHint(err error) error {
	if !domain.IsValidationError(err) {
		return err
	}
	return fmt.Errorf("%w (see 'umlstudio generate --help' and 'umlstudio types')", err)
}

// execute submits the description and runs the requested exports concurrently
func (g *GenerateCmd) execute(ctx context.Context, container *Container) (*generateResult, error) {
	formats, err := parseExportFormats(g.Export)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.New().String()
	target := adapterrenderer.NewBufferTarget()
	controller := container.NewSessionController(sessionID, logNotifier{}, nil, target)
	defer controller.Close()

	if err := controller.SetDiagramType(g.Type); err != nil {
		return nil, err
	}
	controller.SetDescription(g.Description)
	if state := controller.State(); !state.IsDescriptionValid() {
		return nil, domain.ValidateDescription(state.Description)
	}

	logging.Logger.Info("Generating diagram headlessly",
		"session_id", sessionID,
		"diagram_type", g.Type,
		"exports", len(formats))

	if err := controller.Submit(ctx); err != nil {
		return nil, fmt.Errorf("failed to generate diagram: %w", err)
	}

	state := controller.State()
	result := &generateResult{
		Definition:  state.LastDefinition,
		DiagramType: state.DiagramType,
		Rendered:    target.Content(),
		SessionID:   sessionID,
	}

	if len(formats) > 0 {
		paths := make([]string, len(formats))
		eg, egCtx := errgroup.WithContext(ctx)
		for i, format := range formats {
			eg.Go(func() error {
				path, err := controller.RequestExport(egCtx, format)
				if err != nil {
					return err
				}
				paths[i] = path
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
		result.Exports = paths
	}

	if g.Copy {
		if err := controller.CopyDefinition(); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// parseExportFormats validates and de-duplicates the --export values
func parseExportFormats(values []string) ([]domain.ExportFormat, error) {
	var formats []domain.ExportFormat
	for _, v := range values {
		if v == "" {
			continue
		}
		f, err := domain.ParseExportFormat(v)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	return formats, nil
}
