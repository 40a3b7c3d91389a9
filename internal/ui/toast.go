package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/theme"
)

// clearToastMsg is sent when a toast's display time is over
type clearToastMsg struct {
	seq int
}

// ToastManager shows one notification at a time and clears it after a delay.
// A newer toast replaces the current one and restarts the timer.
type ToastManager struct {
	current  *domain.Notification
	duration time.Duration
	seq      int
}

// NewToastManager creates a toast manager with the given display duration
func NewToastManager(duration time.Duration) *ToastManager {
	if duration <= 0 {
		duration = 3 * time.Second
	}
	return &ToastManager{duration: duration}
}

// Show displays n and returns the command that clears it
func (t *ToastManager) Show(n domain.Notification) tea.Cmd {
	t.seq++
	t.current = &n
	seq := t.seq
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}

// Clear removes the toast if seq still identifies it
func (t *ToastManager) Clear(seq int) {
	if seq == t.seq {
		t.current = nil
	}
}

// Current returns the toast on screen, if any
func (t *ToastManager) Current() (domain.Notification, bool) {
	if t.current == nil {
		return domain.Notification{}, false
	}
	return *t.current, true
}

// View renders the current toast, or an empty string
func (t *ToastManager) View(width int) string {
	n, ok := t.Current()
	if !ok {
		return ""
	}

	var style lipgloss.Style
	var icon string
	switch n.Kind {
	case domain.NotifyError:
		style, icon = theme.ToastErrorStyle, "✗ "
	case domain.NotifySuccess:
		style, icon = theme.ToastSuccessStyle, "✓ "
	default:
		style, icon = theme.ToastInfoStyle, "ℹ "
	}

	text := icon + n.Message
	if width > 4 {
		text = ansi.Truncate(text, width-2, "…")
	}
	return style.Render(text)
}
