package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/logging"
	"github.com/umlstudio/umlstudio/internal/services"
)

var errArchiveDisabled = errors.New("the diagram archive is disabled (set \"archive\": true in settings.json)")

const descriptionColumnWidth = 50

// HistoryCmd manages the persistent diagram archive
type HistoryCmd struct {
	Clear  HistoryClearCmd  `cmd:"clear" help:"Delete every archived diagram"`
	Delete HistoryDeleteCmd `cmd:"delete" help:"Delete one archived diagram"`
	List   HistoryListCmd   `cmd:"list" help:"List archived diagrams, newest first" default:"1"`
	Show   HistoryShowCmd   `cmd:"show" help:"Show one archived diagram"`
}

// HistoryListCmd lists archived diagrams
type HistoryListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Maximum number of diagrams to list" default:"20" short:"n"`
}

// HistoryShowCmd shows one archived diagram
type HistoryShowCmd struct {
	Format    string `help:"Output format: text or json" enum:"text,json" default:"text"`
	Highlight bool   `help:"Print the highlighted, line-numbered definition"`
	ID        string `arg:"" help:"ID of the archived diagram"`
}

// HistoryDeleteCmd deletes one archived diagram
type HistoryDeleteCmd struct {
	Force bool   `help:"Skip confirmation prompt" short:"f"`
	ID    string `arg:"" help:"ID of the archived diagram"`
}

// HistoryClearCmd deletes every archived diagram
type HistoryClearCmd struct {
	Force bool `help:"Skip confirmation prompt" short:"f"`
}

type archivedDiagramOutput struct {
	CreatedAt   string `json:"created_at"`
	Definition  string `json:"definition,omitempty"`
	Description string `json:"description"`
	DiagramType string `json:"diagram_type"`
	ID          string `json:"id"`
	SessionID   string `json:"session_id"`
}

func toArchivedDiagramOutput(d domain.ArchivedDiagram, withDefinition bool) archivedDiagramOutput {
	out := archivedDiagramOutput{
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
		Description: d.Description,
		DiagramType: d.DiagramType,
		ID:          d.ID,
		SessionID:   d.SessionID,
	}
	if withDefinition {
		out.Definition = d.Definition
	}
	return out
}

func archiveService(cli *CLI) (*services.ArchiveService, error) {
	if cli.Container == nil || cli.Container.ArchiveService == nil {
		return nil, errArchiveDisabled
	}
	return cli.Container.ArchiveService, nil
}

// Run executes the list command
func (h *HistoryListCmd) Run(cli *CLI) error {
	svc, err := archiveService(cli)
	if err != nil {
		return err
	}

	diagrams, err := svc.List(context.Background(), h.Limit)
	if err != nil {
		return err
	}

	if h.Format == "json" {
		out := make([]archivedDiagramOutput, 0, len(diagrams))
		for _, d := range diagrams {
			out = append(out, toArchivedDiagramOutput(d, false))
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(diagrams) == 0 {
		fmt.Println("No archived diagrams.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tType\tCreated\tDescription")
	fmt.Fprintln(w, "──\t────\t───────\t───────────")
	for _, d := range diagrams {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			d.ID,
			d.DiagramType,
			d.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			shorten(d.Description, descriptionColumnWidth))
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'umlstudio run --replay <id>' to open one in the studio.")
	return nil
}

// Run executes the show command
func (h *HistoryShowCmd) Run(cli *CLI) error {
	svc, err := archiveService(cli)
	if err != nil {
		return err
	}

	diagram, err := svc.Get(context.Background(), h.ID)
	if err != nil {
		return fmt.Errorf("failed to get archived diagram: %w", err)
	}

	if h.Format == "json" {
		data, err := json.MarshalIndent(toArchivedDiagramOutput(*diagram, true), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("ID: %s\n", diagram.ID)
	fmt.Printf("Type: %s\n", diagram.DiagramType)
	fmt.Printf("Created: %s\n", diagram.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Session: %s\n", diagram.SessionID)
	fmt.Printf("Description: %s\n\n", diagram.Description)
	if h.Highlight {
		fmt.Println(cli.Container.Renderer.Format(diagram.Definition))
	} else {
		fmt.Println(diagram.Definition)
	}
	return nil
}

// Run executes the delete command
func (h *HistoryDeleteCmd) Run(cli *CLI) error {
	svc, err := archiveService(cli)
	if err != nil {
		return err
	}

	if !h.Force && !confirm(fmt.Sprintf("Delete archived diagram '%s'?", h.ID)) {
		fmt.Println("Cancelled")
		return nil
	}

	logging.Logger.Debug("Deleting archived diagram from CLI", "id", h.ID)
	if err := svc.Delete(context.Background(), h.ID); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted archived diagram '%s'\n", h.ID)
	return nil
}

// Run executes the clear command
func (h *HistoryClearCmd) Run(cli *CLI) error {
	svc, err := archiveService(cli)
	if err != nil {
		return err
	}

	if !h.Force && !confirm("Delete every archived diagram?") {
		fmt.Println("Cancelled")
		return nil
	}

	n, err := svc.Clear(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("✓ Deleted %d archived diagram(s)\n", n)
	return nil
}

// confirm asks a yes/no question on stdin, defaulting to no
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	var response string
	fmt.Scanln(&response)
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// shorten truncates s to width runes, marking the cut with "..."
func shorten(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}
