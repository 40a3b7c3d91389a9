package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/theme"
)

type listItem struct {
	desc  string
	title string
}

// ListPanel is a titled, selectable list used for the history and suggestions panels
type ListPanel struct {
	empty    string
	focused  bool
	height   int
	items    []listItem
	selected int
	title    string
	width    int
}

func newListPanel(title, empty string) *ListPanel {
	return &ListPanel{empty: empty, title: title}
}

// NewHistoryPanel creates the panel listing recent results
func NewHistoryPanel() *ListPanel {
	return newListPanel("History", "No diagrams yet")
}

// NewSuggestionsPanel creates the panel of canned suggestions
func NewSuggestionsPanel() *ListPanel {
	p := newListPanel("Suggestions", "No suggestions")
	items := make([]listItem, len(domain.Suggestions))
	for i, s := range domain.Suggestions {
		label := s.DiagramType
		if t := domain.GetDiagramType(s.DiagramType); t != nil {
			label = t.Label
		}
		items[i] = listItem{desc: label + " · " + s.Description, title: s.Title}
	}
	p.setItems(items)
	return p
}

// SetHistory replaces the items with history entries (newest first)
func (p *ListPanel) SetHistory(entries []domain.HistoryEntry, capacity int) {
	items := make([]listItem, len(entries))
	for i, e := range entries {
		label := e.DiagramType
		if t := domain.GetDiagramType(e.DiagramType); t != nil {
			label = t.Label
		}
		items[i] = listItem{
			desc:  e.CreatedAt.Local().Format("15:04:05") + " · " + label,
			title: e.SourceDescription,
		}
	}
	p.title = fmt.Sprintf("History (%d/%d)", len(entries), capacity)
	p.setItems(items)
}

func (p *ListPanel) setItems(items []listItem) {
	p.items = items
	if p.selected >= len(items) {
		p.selected = len(items) - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

// SetFocused marks the panel as the keyboard target
func (p *ListPanel) SetFocused(focused bool) {
	p.focused = focused
}

// SetSize sets the outer size of the panel, borders included
func (p *ListPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// MoveUp selects the previous item
func (p *ListPanel) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown selects the next item
func (p *ListPanel) MoveDown() {
	if p.selected < len(p.items)-1 {
		p.selected++
	}
}

// Selected returns the index of the selected item, false when the list is empty
func (p *ListPanel) Selected() (int, bool) {
	if len(p.items) == 0 {
		return 0, false
	}
	return p.selected, true
}

// Len returns the number of items
func (p *ListPanel) Len() int {
	return len(p.items)
}

// View renders the panel
func (p *ListPanel) View() string {
	style := theme.PanelStyle
	if p.focused {
		style = theme.PanelFocusedStyle
	}

	// Border (2) + padding (2)
	inner := p.width - 4
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	b.WriteString(theme.PanelTitleStyle.Render(p.title))

	if len(p.items) == 0 {
		b.WriteString("\n" + theme.MutedStyle.Render(p.empty))
	}

	// Two lines per item, one line for the title
	visible := (p.height - 3) / 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if p.selected >= visible {
		start = p.selected - visible + 1
	}

	for i := start; i < len(p.items) && i < start+visible; i++ {
		item := p.items[i]
		title := ansi.Truncate(item.title, inner-2, "…")
		desc := ansi.Truncate(item.desc, inner-2, "…")
		if i == p.selected && p.focused {
			b.WriteString("\n" + theme.ListItemSelectedStyle.Render("› "+title))
		} else {
			b.WriteString("\n" + theme.ListItemStyle.Render("  "+title))
		}
		b.WriteString("\n" + theme.ListDescStyle.Render("  "+desc))
	}

	return style.Width(inner + 2).Height(p.height - 2).Render(b.String())
}
