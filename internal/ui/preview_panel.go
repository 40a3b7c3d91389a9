package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/theme"
)

var (
	previewLineStyle = lipgloss.NewStyle().
				Foreground(theme.ColorBorder)

	previewLineFocusedStyle = lipgloss.NewStyle().
				Foreground(theme.ColorBorderFocused)

	previewHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(theme.ColorSecondary).
				PaddingLeft(1)
)

// PreviewPanel shows the rendered diagram, the last error or a placeholder
type PreviewPanel struct {
	focused     bool
	height      int
	initialized bool
	title       string
	viewport    viewport.Model
	width       int
}

// NewPreviewPanel creates a new preview panel component
func NewPreviewPanel() *PreviewPanel {
	return &PreviewPanel{
		title:    "Preview",
		viewport: viewport.New(0, 0),
	}
}

// SetState updates the panel from a session snapshot. rendered is the current
// content of the render target.
func (p *PreviewPanel) SetState(state domain.SessionState, rendered string) {
	if t := domain.GetDiagramType(state.DiagramType); t != nil {
		p.title = "Preview: " + t.Label
	}
	if !p.initialized {
		return
	}

	var content string
	switch {
	case state.LastError != nil:
		content = theme.ErrorStyle.Render(formatErrorForDisplay(state.LastError, p.width-2))
	case rendered != "":
		content = rendered
	case state.Status == domain.StatusSubmitting:
		content = theme.MutedStyle.Render("Generating diagram...")
	default:
		content = theme.MutedStyle.Render("Your diagram will appear here.\nWrite a description and generate.")
	}

	p.viewport.SetContent(strings.TrimRight(content, "\n"))
}

// SetFocused marks the panel as the keyboard target for scrolling
func (p *PreviewPanel) SetFocused(focused bool) {
	p.focused = focused
}

// SetSize handles resize and marks as initialized
func (p *PreviewPanel) SetSize(width, height int) {
	p.width = width
	p.height = height

	// Top line + header + bottom line
	viewportWidth := width
	viewportHeight := height - 3
	if viewportWidth < 1 {
		viewportWidth = 1
	}
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	p.viewport.Width = viewportWidth
	p.viewport.Height = viewportHeight
	p.initialized = true
}

// Update scrolls the viewport
func (p *PreviewPanel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// View renders the preview panel
func (p *PreviewPanel) View() string {
	if !p.initialized {
		return ""
	}

	lineStyle := previewLineStyle
	if p.focused {
		lineStyle = previewLineFocusedStyle
	}
	line := lineStyle.Render(strings.Repeat("═", p.width))
	header := previewHeaderStyle.Render(p.title)

	return line + "\n" + header + "\n" + p.viewport.View() + "\n" + line
}
