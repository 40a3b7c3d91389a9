package ui

import tea "github.com/charmbracelet/bubbletea"

// Dialog wraps any tea.Model and prepends the application header with a title.
// Every dialog gets the same header.
//
// Usage:
//
//	dialog := NewDialog("Export Diagram", NewExportForm(), devMode)
//	dialog.Init()
//	dialog.Update(msg)
//	dialog.View()
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

// NewDialog creates a new dialog wrapper around content
func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

// Init delegates to the wrapped content
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to the wrapped content and keeps the Dialog as the model
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View returns the header followed by the content view
func (d *Dialog) View() string {
	return renderDialogHeader(d.devMode, d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion, e.g.
//
//	if form, ok := dialog.Content().(*ExportForm); ok && form.Completed { ... }
func (d *Dialog) Content() tea.Model {
	return d.content
}
