package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/umlstudio/umlstudio/internal/adapters/renderer"
	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/ports"
	portsmocks "github.com/umlstudio/umlstudio/internal/ports/mocks"
	"github.com/umlstudio/umlstudio/internal/services"
)

type modelFixture struct {
	controller *services.SessionController
	generator  *portsmocks.MockDiagramGenerator
	model      *Model
	notifier   *portsmocks.RecordingNotifier
	refresher  *portsmocks.MockCacheRefresher
}

func newModelFixture(t *testing.T) *modelFixture {
	t.Helper()

	f := &modelFixture{
		generator: portsmocks.NewMockDiagramGenerator(t),
		notifier:  &portsmocks.RecordingNotifier{},
		refresher: portsmocks.NewMockCacheRefresher(t),
	}

	target := renderer.NewBufferTarget()
	f.controller = services.NewSessionController(services.SessionControllerParams{
		DebounceWindow: 10 * time.Millisecond,
		Generator:      f.generator,
		Notifier:       f.notifier,
		RenderTarget:   target,
		Renderer:       renderer.NewTerminalRenderer(renderer.Options{}),
	})
	t.Cleanup(f.controller.Close)

	events := NewEventBridge()
	t.Cleanup(events.Close)

	f.model = NewModel(ModelParams{
		Controller:    f.controller,
		Events:        events,
		Preview:       target,
		Refresher:     f.refresher,
		ToastDuration: time.Second,
	})
	f.model.Init()
	f.model.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	return f
}

func (f *modelFixture) press(msg tea.KeyMsg) tea.Cmd {
	_, cmd := f.model.Update(msg)
	return cmd
}

func (f *modelFixture) typeText(s string) {
	f.press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (f *modelFixture) sync() {
	f.model.Update(stateChangedMsg{state: f.controller.State()})
}

func TestModel_TypingUpdatesDescription(t *testing.T) {
	f := newModelFixture(t)

	f.typeText("a class diagram")

	assert.Equal(t, "a class diagram", f.controller.State().Description)
	assert.Equal(t, "a class diagram", f.model.editor.Value())
}

func TestModel_GenerateRendersIntoPreview(t *testing.T) {
	f := newModelFixture(t)
	f.generator.On("Generate", mock.Anything, ports.GenerationRequest{
		Description: "customers and orders",
		DiagramType: "classDiagram",
	}).Return("classDiagram\n  Customer --> Order", nil).Once()

	f.typeText("customers and orders")
	f.press(tea.KeyMsg{Type: tea.KeyCtrlS})

	require.Eventually(t, func() bool {
		return f.controller.State().Status == domain.StatusRendered
	}, 2*time.Second, 10*time.Millisecond)

	f.sync()
	view := ansi.Strip(f.model.View())
	assert.Contains(t, view, "Customer --> Order")
	assert.Contains(t, view, "History (1/6)")
}

func TestModel_GenerateFailureShowsError(t *testing.T) {
	f := newModelFixture(t)
	f.generator.On("Generate", mock.Anything, mock.Anything).
		Return("", &domain.RequestError{Message: "invalid description"}).Once()

	f.typeText("something")
	f.press(tea.KeyMsg{Type: tea.KeyCtrlS})

	require.Eventually(t, func() bool {
		return f.controller.State().Status == domain.StatusFailed
	}, 2*time.Second, 10*time.Millisecond)

	f.sync()
	assert.Contains(t, ansi.Strip(f.model.View()), "Error: invalid description")
}

func TestModel_ApplySuggestionFillsEditor(t *testing.T) {
	f := newModelFixture(t)

	// editor -> preview -> history -> suggestions
	for i := 0; i < 3; i++ {
		f.press(tea.KeyMsg{Type: tea.KeyTab})
	}
	require.Equal(t, focusSuggestions, f.model.focus)

	f.press(tea.KeyMsg{Type: tea.KeyDown})
	f.press(tea.KeyMsg{Type: tea.KeyEnter})

	want := domain.Suggestions[1]
	state := f.controller.State()
	assert.Equal(t, want.Description, state.Description)
	assert.Equal(t, want.DiagramType, state.DiagramType)
	assert.Equal(t, want.Description, f.model.editor.Value())
	assert.Equal(t, focusEditor, f.model.focus)
	assert.Equal(t, domain.StatusIdle, state.Status)
}

func TestModel_LoadFromHistoryRestoresDescription(t *testing.T) {
	f := newModelFixture(t)
	f.generator.On("Generate", mock.Anything, mock.Anything).Return("flowchart TD\n  A --> B", nil).Once()

	f.typeText("a flow")
	require.NoError(t, f.controller.Submit(t.Context()))

	f.controller.Reset()
	f.model.editor.SetValue("")
	f.sync()

	f.press(tea.KeyMsg{Type: tea.KeyTab})
	f.press(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusHistory, f.model.focus)
	f.press(tea.KeyMsg{Type: tea.KeyEnter})

	state := f.controller.State()
	assert.Equal(t, domain.StatusRendered, state.Status)
	assert.Equal(t, "a flow", state.Description)
	assert.Equal(t, "a flow", f.model.editor.Value())
}

func TestModel_CopyWithoutDiagramNotifies(t *testing.T) {
	f := newModelFixture(t)

	f.press(tea.KeyMsg{Type: tea.KeyCtrlY})

	last, ok := f.notifier.Last()
	require.True(t, ok)
	assert.Equal(t, domain.NotifyError, last.Kind)
	assert.Equal(t, services.MsgCopyFailed, last.Message)
}

func TestModel_ExportWithoutDiagramSkipsDialog(t *testing.T) {
	f := newModelFixture(t)

	cmd := f.press(tea.KeyMsg{Type: tea.KeyCtrlE})
	assert.Equal(t, stateMain, f.model.state)
	require.NotNil(t, cmd)

	done, ok := cmd().(exportDoneMsg)
	require.True(t, ok)
	assert.Error(t, done.err)

	last, ok := f.notifier.Last()
	require.True(t, ok)
	assert.Equal(t, services.MsgNoDiagram, last.Message)
}

func TestModel_ResetDialogCanBeCancelled(t *testing.T) {
	f := newModelFixture(t)
	f.typeText("keep me")

	f.press(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Equal(t, stateConfirmingReset, f.model.state)
	assert.NotEmpty(t, f.model.View())

	f.press(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateMain, f.model.state)
	assert.Equal(t, "keep me", f.controller.State().Description)
}

func TestModel_TypePickerCancel(t *testing.T) {
	f := newModelFixture(t)

	f.press(tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, statePickingType, f.model.state)

	f.press(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateMain, f.model.state)
	assert.Equal(t, "classDiagram", f.controller.State().DiagramType)
}

func TestModel_HelpScreen(t *testing.T) {
	f := newModelFixture(t)

	f.press(tea.KeyMsg{Type: tea.KeyF1})
	require.Equal(t, stateHelp, f.model.state)
	assert.Contains(t, ansi.Strip(f.model.View()), "generate diagram")

	f.press(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateMain, f.model.state)
}

func TestModel_FullscreenToggle(t *testing.T) {
	f := newModelFixture(t)

	f.press(tea.KeyMsg{Type: tea.KeyCtrlF})
	assert.True(t, f.model.fullscreen)
	assert.NotContains(t, ansi.Strip(f.model.View()), "Suggestions")

	f.press(tea.KeyMsg{Type: tea.KeyCtrlF})
	assert.False(t, f.model.fullscreen)
	assert.Contains(t, ansi.Strip(f.model.View()), "Suggestions")
}

func TestModel_RefreshCache(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "success", message: "Service cache cleared"},
		{name: "failure", err: errors.New("boom"), message: "Failed to clear the service cache"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newModelFixture(t)
			f.refresher.On("Refresh", mock.Anything).Return(tt.err).Once()

			cmd := f.press(tea.KeyMsg{Type: tea.KeyCtrlL})
			require.NotNil(t, cmd)
			f.model.Update(cmd())

			toast, ok := f.model.toast.Current()
			require.True(t, ok)
			assert.Equal(t, tt.message, toast.Message)
		})
	}
}

func TestModel_QuitKeys(t *testing.T) {
	f := newModelFixture(t)

	cmd := f.press(tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_NotificationShowsToast(t *testing.T) {
	f := newModelFixture(t)

	f.model.Update(notificationMsg{notification: domain.Notification{
		Kind:    domain.NotifySuccess,
		Message: services.MsgCopied,
	}})

	assert.Contains(t, ansi.Strip(f.model.View()), services.MsgCopied)
}

type countingPreview struct {
	content string
	reads   int
	version uint64
}

func (p *countingPreview) Content() string {
	p.reads++
	return p.content
}

func (p *countingPreview) Version() uint64 {
	return p.version
}

func TestModel_PreviewReadOnlyWhenVersionMoves(t *testing.T) {
	f := newModelFixture(t)
	source := &countingPreview{content: "first", version: 1}
	f.model.previewSource = source

	assert.Equal(t, "first", f.model.renderedPreview())
	assert.Equal(t, "first", f.model.renderedPreview())
	assert.Equal(t, 1, source.reads)

	source.content = "second"
	source.version = 2
	assert.Equal(t, "second", f.model.renderedPreview())
	assert.Equal(t, 2, source.reads)
}
