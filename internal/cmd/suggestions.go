package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/umlstudio/umlstudio/internal/domain"
)

// SuggestionsCmd lists the canned description suggestions
type SuggestionsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type suggestionOutput struct {
	Description string `json:"description"`
	DiagramType string `json:"diagram_type"`
	Title       string `json:"title"`
}

// Run executes the suggestions command
func (s *SuggestionsCmd) Run() error {
	if s.Format == "json" {
		out := make([]suggestionOutput, 0, len(domain.Suggestions))
		for _, sg := range domain.Suggestions {
			out = append(out, suggestionOutput{
				Description: sg.Description,
				DiagramType: sg.DiagramType,
				Title:       sg.Title,
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
	fmt.Fprintln(w, "Title\tType\tDescription")
	fmt.Fprintln(w, "─────\t────\t───────────")
	for _, sg := range domain.Suggestions {
		fmt.Fprintf(w, "%s\t%s\t%s\n", sg.Title, sg.DiagramType, sg.Description)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'umlstudio generate \"<description>\" --type <type>' to try one.")
	return nil
}
