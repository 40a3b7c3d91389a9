package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/umlstudio/umlstudio/internal/config"
	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/logging"
	"github.com/umlstudio/umlstudio/internal/ports"
	"github.com/umlstudio/umlstudio/internal/services"
	"github.com/umlstudio/umlstudio/internal/theme"
)

const (
	exportTimeout   = 2 * time.Minute
	refreshTimeout  = 30 * time.Second
	tipInterval     = 15 * time.Second
	minLeftWidth    = 36
	headerHeight    = 3
	footerHeight    = 3
	suggestionsRows = 9
)

type uiState int

const (
	stateMain uiState = iota
	stateChoosingExport
	stateConfirmingReset
	stateHelp
	statePickingType
)

type focusArea int

const (
	focusEditor focusArea = iota
	focusPreview
	focusHistory
	focusSuggestions
	focusCount
)

// PreviewSource exposes what the renderer last drew.
// Version changes whenever Content does.
type PreviewSource interface {
	Content() string
	Version() uint64
}

// ModelParams holds the dependencies of the root model
type ModelParams struct {
	Controller      *services.SessionController
	DevMode         bool
	Events          *EventBridge
	ExportDir       string
	HistoryCapacity int
	KeyBindings     config.KeyBindingsConfig
	Preview         PreviewSource
	Refresher       ports.CacheRefresher // Optional
	ToastDuration   time.Duration
}

// Model is the root Bubble Tea model of the diagram studio
type Model struct {
	controller      *services.SessionController
	devMode         bool
	dialog          *Dialog // Active dialog, nil in stateMain
	editor          *EditorPanel
	events          *EventBridge
	exportDir       string
	focus           focusArea
	fullscreen      bool
	height          int
	history         *ListPanel
	historyCapacity int
	keys            KeyMap
	lastExport      string
	preview         *PreviewPanel
	previewCache    string
	previewSource   PreviewSource
	previewVersion  uint64
	refresher       ports.CacheRefresher
	session         domain.SessionState
	spinner         spinner.Model
	state           uiState
	suggestions     *ListPanel
	tipIndex        int
	tips            []Tip
	toast           *ToastManager
	width           int
}

// NewModel creates the root model. The controller must have been built with
// params.Events as its notifier and params.Events.StateChanged as its state hook.
func NewModel(params ModelParams) *Model {
	keys := NewKeyMap(params.KeyBindings)

	capacity := params.HistoryCapacity
	if capacity <= 0 {
		capacity = domain.DefaultHistoryCapacity
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	m := &Model{
		controller:      params.Controller,
		devMode:         params.DevMode,
		editor:          NewEditorPanel(),
		events:          params.Events,
		exportDir:       params.ExportDir,
		history:         NewHistoryPanel(),
		historyCapacity: capacity,
		keys:            keys,
		preview:         NewPreviewPanel(),
		previewSource:   params.Preview,
		refresher:       params.Refresher,
		spinner:         s,
		state:           stateMain,
		suggestions:     NewSuggestionsPanel(),
		tips:            keys.Tips(),
		toast:           NewToastManager(params.ToastDuration),
	}

	m.session = m.controller.State()
	m.editor.SetValue(m.session.Description)
	m.syncPanels()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.editor.Focus(),
		m.events.Wait(),
		m.spinner.Tick,
		tea.Tick(tipInterval, func(time.Time) tea.Msg { return tipTickMsg{} }),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if m.dialog != nil {
			_, cmd := m.dialog.Update(msg)
			return m, cmd
		}
		return m, nil

	case stateChangedMsg:
		m.session = msg.state
		m.syncPanels()
		return m, m.events.Wait()

	case notificationMsg:
		return m, tea.Batch(m.toast.Show(msg.notification), m.events.Wait())

	case clearToastMsg:
		m.toast.Clear(msg.seq)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tipTickMsg:
		if len(m.tips) > 0 {
			m.tipIndex = (m.tipIndex + 1) % len(m.tips)
		}
		return m, tea.Tick(tipInterval, func(time.Time) tea.Msg { return tipTickMsg{} })

	case exportDoneMsg:
		if msg.err != nil {
			logging.Logger.Debug("Export finished with error", "format", msg.format, "error", msg.err)
			return m, nil
		}
		m.lastExport = msg.path
		return m, nil

	case refreshDoneMsg:
		if msg.err != nil {
			logging.Logger.Error("Failed to clear service cache", "error", msg.err)
			return m, m.toast.Show(domain.Notification{Kind: domain.NotifyError, Message: "Failed to clear the service cache"})
		}
		return m, m.toast.Show(domain.Notification{Kind: domain.NotifySuccess, Message: "Service cache cleared"})
	}

	switch m.state {
	case stateMain:
		return m.updateMain(msg)
	case stateChoosingExport:
		return m.updateChoosingExport(msg)
	case stateConfirmingReset:
		return m.updateConfirmingReset(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case statePickingType:
		return m.updatePickingType(msg)
	}
	return m, nil
}

func (m *Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if action := m.keys.Action(keyMsg); action != nil {
			msg = action
		}
	}

	switch msg := msg.(type) {
	case QuitMsg:
		return m, tea.Quit

	case ShowHelpMsg:
		return m, m.openDialog(stateHelp, "Help", NewHelpScreen(&m.keys))

	case GenerateMsg:
		m.controller.SetDescription(m.editor.Value())
		m.controller.TriggerSubmit()
		return m, nil

	case PickDiagramTypeMsg:
		return m, m.openDialog(statePickingType, "Diagram Type", NewTypePickerForm(m.session.DiagramType))

	case ExportDiagramMsg:
		if !m.session.HasDefinition() {
			// The controller reports the missing diagram
			return m, m.exportCmd(domain.ExportFormats[0])
		}
		return m, m.openDialog(stateChoosingExport, "Export Diagram", NewExportForm(m.exportDir))

	case CopyDefinitionMsg:
		if err := m.controller.CopyDefinition(); err != nil {
			logging.Logger.Debug("Copy failed", "error", err)
		}
		return m, nil

	case ResetSessionMsg:
		return m, m.openDialog(stateConfirmingReset, "Reset Session", NewResetConfirmForm())

	case RefreshCacheMsg:
		if m.refresher == nil {
			return m, m.toast.Show(domain.Notification{Kind: domain.NotifyInfo, Message: "Cache refresh is not available"})
		}
		return m, m.refreshCmd()

	case ToggleFullscreenMsg:
		m.fullscreen = !m.fullscreen
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleFocusedKey(msg)
	}

	return m, nil
}

// handleFocusedKey routes keys that are not global actions to the focused panel
func (m *Model) handleFocusedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Navigation.NextPanel.Binding):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.Navigation.PrevPanel.Binding):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	switch m.focus {
	case focusEditor:
		if msg.String() == "esc" {
			return m, m.setFocus(focusPreview)
		}
		changed, cmd := m.editor.Update(msg)
		if changed {
			m.controller.SetDescription(m.editor.Value())
		}
		return m, cmd

	case focusPreview:
		return m, m.preview.Update(msg)

	case focusHistory:
		switch {
		case key.Matches(msg, m.keys.Navigation.Up.Binding):
			m.history.MoveUp()
		case key.Matches(msg, m.keys.Navigation.Down.Binding):
			m.history.MoveDown()
		case key.Matches(msg, m.keys.Navigation.Select.Binding):
			return m, m.loadSelectedHistory()
		}

	case focusSuggestions:
		switch {
		case key.Matches(msg, m.keys.Navigation.Up.Binding):
			m.suggestions.MoveUp()
		case key.Matches(msg, m.keys.Navigation.Down.Binding):
			m.suggestions.MoveDown()
		case key.Matches(msg, m.keys.Navigation.Select.Binding):
			return m, m.applySelectedSuggestion()
		}
	}

	return m, nil
}

func (m *Model) loadSelectedHistory() tea.Cmd {
	i, ok := m.history.Selected()
	if !ok {
		return nil
	}
	if err := m.controller.LoadFromHistoryIndex(context.Background(), i); err != nil {
		logging.Logger.Warn("Failed to load history entry", "index", i, "error", err)
		return m.toast.Show(domain.Notification{Kind: domain.NotifyError, Message: "Failed to load diagram from history"})
	}
	m.editor.SetValue(m.controller.State().Description)
	return nil
}

func (m *Model) applySelectedSuggestion() tea.Cmd {
	i, ok := m.suggestions.Selected()
	if !ok {
		return nil
	}
	if err := m.controller.ApplySuggestion(domain.Suggestions[i]); err != nil {
		logging.Logger.Warn("Failed to apply suggestion", "index", i, "error", err)
		return nil
	}
	m.editor.SetValue(m.controller.State().Description)
	return m.setFocus(focusEditor)
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.preview.SetFocused(f == focusPreview)
	m.history.SetFocused(f == focusHistory)
	m.suggestions.SetFocused(f == focusSuggestions)

	if f == focusEditor {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

// openDialog switches to state and shows content in a Dialog sized to the terminal
func (m *Model) openDialog(state uiState, title string, content tea.Model) tea.Cmd {
	m.dialog = NewDialog(title, content, m.devMode)
	m.state = state

	initCmd := m.dialog.Init()
	_, sizeCmd := m.dialog.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) closeDialog() {
	m.dialog = nil
	m.state = stateMain
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)

	if content, ok := m.dialog.Content().(*HelpScreen); ok && content.Completed {
		m.closeDialog()
		return m, nil
	}

	return m, cmd
}

func (m *Model) updatePickingType(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)

	if content, ok := m.dialog.Content().(*TypePickerForm); ok && content.Completed {
		result := content.Result()
		m.closeDialog()

		if !result.Cancelled {
			if err := m.controller.SetDiagramType(result.DiagramType); err != nil {
				return m, m.toast.Show(domain.Notification{Kind: domain.NotifyError, Message: err.Error()})
			}
		}
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateChoosingExport(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)

	if content, ok := m.dialog.Content().(*ExportForm); ok && content.Completed {
		result := content.Result()
		m.closeDialog()

		if !result.Cancelled {
			return m, m.exportCmd(result.Format)
		}
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateConfirmingReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)

	if content, ok := m.dialog.Content().(*ResetConfirmForm); ok && content.Completed {
		m.closeDialog()

		if content.Confirmed() {
			m.controller.Reset()
			m.editor.SetValue("")
			m.lastExport = ""
			return m, m.setFocus(focusEditor)
		}
		return m, nil
	}

	return m, cmd
}

// exportCmd runs the export off the input loop. The controller reports the
// outcome as a notification.
func (m *Model) exportCmd(format domain.ExportFormat) tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		path, err := controller.RequestExport(ctx, format)
		return exportDoneMsg{err: err, format: format, path: path}
	}
}

func (m *Model) refreshCmd() tea.Cmd {
	refresher := m.refresher
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		return refreshDoneMsg{err: refresher.Refresh(ctx)}
	}
}

// syncPanels refreshes the panels from the latest session snapshot
func (m *Model) syncPanels() {
	m.editor.SetState(m.session)
	m.history.SetHistory(m.controller.History(), m.historyCapacity)

	rendered := ""
	if m.previewSource != nil && m.session.HasDefinition() {
		rendered = m.renderedPreview()
	}
	m.preview.SetState(m.session, rendered)
}

// renderedPreview re-reads the source only when its version moved
func (m *Model) renderedPreview() string {
	if v := m.previewSource.Version(); v != m.previewVersion {
		m.previewCache = m.previewSource.Content()
		m.previewVersion = v
	}
	return m.previewCache
}

func (m *Model) layout() {
	bodyHeight := max(m.height-headerHeight-footerHeight, 5)

	if m.fullscreen {
		m.preview.SetSize(m.width, bodyHeight)
		m.syncPanels()
		return
	}

	leftWidth := max(m.width*2/5, minLeftWidth)
	rightWidth := max(m.width-leftWidth-1, 10)

	historyHeight := min(m.historyCapacity*2+3, bodyHeight/3)
	editorHeight := max(bodyHeight-historyHeight-suggestionsRows, 6)

	m.editor.SetSize(leftWidth, editorHeight)
	m.history.SetSize(leftWidth, historyHeight)
	m.suggestions.SetSize(leftWidth, suggestionsRows)
	m.preview.SetSize(rightWidth, bodyHeight)
	m.syncPanels()
}

func (m *Model) View() string {
	switch m.state {
	case stateMain:
		return m.viewMain()
	case stateHelp:
		if m.dialog != nil {
			return m.dialog.View()
		}
	case statePickingType:
		if m.dialog != nil {
			return compositeOverlay(m.viewMain(), m.dialog.View(), m.width, m.height)
		}
	case stateChoosingExport, stateConfirmingReset:
		if m.dialog != nil {
			return bottomAnchoredOverlay(m.viewMain(), m.dialog.View(), m.width, m.height)
		}
	}
	return ""
}

func (m *Model) viewMain() string {
	var body string
	if m.fullscreen {
		body = m.preview.View()
	} else {
		left := lipgloss.JoinVertical(lipgloss.Left,
			m.editor.View(),
			m.history.View(),
			m.suggestions.View(),
		)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.preview.View())
	}

	return m.viewStatusBar() + "\n" + body + "\n" + m.viewFooter()
}

// viewStatusBar renders the app name, generation status and selected type
func (m *Model) viewStatusBar() string {
	status := m.session.Status
	icon := theme.StatusIconStyle(string(status)).Render(status.Symbol())

	label := string(status)
	if status == domain.StatusSubmitting || m.controller.SubmitPending() {
		icon = m.spinner.View()
		label = "generating"
	}

	typeLabel := m.session.DiagramType
	if t := domain.GetDiagramType(typeLabel); t != nil {
		typeLabel = t.Label
	}

	line := theme.AppNameStyle.Render("UML Studio") + "  " +
		icon + " " + theme.NormalStyle.Render(label) +
		theme.MutedStyle.Render("  ·  ") + theme.NormalStyle.Render(typeLabel)
	if m.lastExport != "" {
		line += theme.MutedStyle.Render("  ·  saved " + m.lastExport)
	}

	return line + "\n" + theme.TaglineStyle.Render(GetVersionInfo().Tagline)
}

// viewFooter renders the toast (or a tip) and the short help line
func (m *Model) viewFooter() string {
	var notice string
	if toast := m.toast.View(m.width); toast != "" {
		notice = toast
	} else if len(m.tips) > 0 {
		notice = RenderTip(m.tips[m.tipIndex%len(m.tips)])
	}

	var parts []string
	for _, b := range m.keys.ShortHelp() {
		help := b.Help()
		parts = append(parts, theme.HelpShortcutStyle.Render(help.Key)+" "+theme.HelpLabelStyle.Render(help.Desc))
	}

	return notice + "\n" + strings.Join(parts, theme.MutedStyle.Render(" • "))
}

// Close releases the event bridge. Call it after the program exits.
func (m *Model) Close() {
	m.events.Close()
}
