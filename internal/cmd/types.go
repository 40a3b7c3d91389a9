package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/umlstudio/umlstudio/internal/domain"
)

// TypesCmd lists the diagram type catalog
type TypesCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type diagramTypeOutput struct {
	AISupport   string `json:"ai_support"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Example     string `json:"example"`
	ID          string `json:"id"`
	Label       string `json:"label"`
}

// Run executes the types command
func (t *TypesCmd) Run() error {
	if t.Format == "json" {
		out := make([]diagramTypeOutput, 0, len(domain.DiagramTypes))
		for _, dt := range domain.DiagramTypes {
			out = append(out, diagramTypeOutput{
				AISupport:   dt.AISupport,
				Description: dt.Description,
				Difficulty:  dt.Difficulty,
				Example:     dt.Example,
				ID:          dt.ID,
				Label:       dt.Label,
			})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tDifficulty\tAI Support")
	fmt.Fprintln(w, "──\t────\t──────────\t──────────")
	for _, dt := range domain.DiagramTypes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", dt.ID, dt.Label, dt.Difficulty, dt.AISupport)
	}
	w.Flush()

	fmt.Println()
	fmt.Printf("Default: %s\n", domain.DefaultDiagramType().ID)
	return nil
}
