package ui

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/theme"
)

// EditorPanel is the description input with its character counter
type EditorPanel struct {
	diagramType string
	focused     bool
	height      int
	input       textarea.Model
	invalid     bool
	width       int
}

// NewEditorPanel creates the description editor
func NewEditorPanel() *EditorPanel {
	input := textarea.New()
	input.Placeholder = "Describe the diagram you want, e.g. a class diagram for a library system"
	input.ShowLineNumbers = false
	input.Prompt = ""
	// Unlimited so pasted text survives intact; the counter flags over-length input.
	input.CharLimit = 0

	return &EditorPanel{
		diagramType: domain.DefaultDiagramType().ID,
		input:       input,
	}
}

// Focus gives the editor keyboard input
func (e *EditorPanel) Focus() tea.Cmd {
	e.focused = true
	return e.input.Focus()
}

// Blur releases keyboard input
func (e *EditorPanel) Blur() {
	e.focused = false
	e.input.Blur()
}

// Value returns the current description text
func (e *EditorPanel) Value() string {
	return e.input.Value()
}

// SetValue replaces the description text
func (e *EditorPanel) SetValue(s string) {
	e.input.SetValue(s)
}

// SetState updates the type label and validation flag shown with the editor
func (e *EditorPanel) SetState(state domain.SessionState) {
	e.diagramType = state.DiagramType
	e.invalid = state.Description != "" && !state.IsDescriptionValid()
}

// SetSize sets the outer size of the panel, borders included
func (e *EditorPanel) SetSize(width, height int) {
	e.width = width
	e.height = height

	// Border (2) + padding (2); title, type and counter lines (3) + border (2)
	w := width - 4
	h := height - 5
	if w < 10 {
		w = 10
	}
	if h < 1 {
		h = 1
	}
	e.input.SetWidth(w)
	e.input.SetHeight(h)
}

// Update forwards input to the textarea and reports whether the text changed
func (e *EditorPanel) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := e.input.Value()
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e.input.Value() != before, cmd
}

// View renders the panel
func (e *EditorPanel) View() string {
	style := theme.PanelStyle
	if e.focused {
		style = theme.PanelFocusedStyle
	}

	label := e.diagramType
	if t := domain.GetDiagramType(e.diagramType); t != nil {
		label = t.Label
	}

	n := utf8.RuneCountInString(e.input.Value())
	counter := theme.CounterStyle.Render(fmt.Sprintf("%d/%d", n, domain.MaxDescriptionLength))
	if e.invalid || n > domain.MaxDescriptionLength {
		counter = theme.CounterErrorStyle.Render(fmt.Sprintf("%d/%d · 1-%d characters required",
			n, domain.MaxDescriptionLength, domain.MaxDescriptionLength))
	}

	content := theme.PanelTitleStyle.Render("Description") + "\n" +
		e.input.View() + "\n" +
		theme.MutedStyle.Render("Type: ") + theme.NormalStyle.Render(label) + "\n" +
		counter

	return style.Width(e.width - 2).Render(content)
}
