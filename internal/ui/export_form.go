package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/umlstudio/umlstudio/internal/domain"
)

// ExportFormResult contains the chosen image format
type ExportFormResult struct {
	Cancelled bool
	Format    domain.ExportFormat
}

// ExportForm asks which image format to export the diagram to
type ExportForm struct {
	Completed bool
	form      *huh.Form
	format    string
	result    ExportFormResult
}

// NewExportForm creates the export format dialog
func NewExportForm(exportDir string) *ExportForm {
	ef := &ExportForm{format: string(domain.ExportFormats[0])}

	options := make([]huh.Option[string], 0, len(domain.ExportFormats))
	for _, f := range domain.ExportFormats {
		options = append(options, huh.NewOption(strings.ToUpper(string(f)), string(f)))
	}

	description := "The image is written with the Mermaid CLI"
	if exportDir != "" {
		description = "Saved to " + exportDir
	}

	ef.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Image format").
				Description(description).
				Options(options...).
				Value(&ef.format),
		),
	)

	return ef
}

func (ef *ExportForm) Init() tea.Cmd {
	return ef.form.Init()
}

func (ef *ExportForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		ef.result.Cancelled = true
		ef.Completed = true
		return ef, nil
	}

	form, cmd := ef.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		ef.form = f
	}

	switch ef.form.State {
	case huh.StateCompleted:
		ef.Completed = true
		format, err := domain.ParseExportFormat(ef.format)
		if err != nil {
			ef.result.Cancelled = true
			return ef, nil
		}
		ef.result.Format = format
		return ef, nil
	case huh.StateAborted:
		ef.result.Cancelled = true
		ef.Completed = true
		return ef, nil
	}

	return ef, cmd
}

func (ef *ExportForm) View() string {
	return ef.form.View()
}

// Result returns the form result
func (ef *ExportForm) Result() ExportFormResult {
	return ef.result
}
