package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/logging"
	"github.com/umlstudio/umlstudio/internal/ports"
)

// Notification messages shown to the user
const (
	MsgCopied             = "Mermaid code copied to clipboard!"
	MsgCopyFailed         = "Failed to copy Mermaid code"
	MsgDownloadFailed     = "Failed to download diagram"
	MsgGenerated          = "Diagram generated successfully!"
	MsgGenerateFailed     = "Failed to generate diagram"
	MsgInvalidDescription = "Please provide a valid description (1-500 characters)."
	MsgLoadedFromHistory  = "Diagram loaded from history"
	MsgNoDiagram          = "No diagram available to download."
	MsgRenderFailed       = "Failed to render diagram"
	MsgTransportFailed    = "Failed to connect to backend. Check your server connection."
)

// DefaultDebounceWindow is the quiet period used by TriggerSubmit
const DefaultDebounceWindow = 500 * time.Millisecond

// SessionController owns the generate, render and reset cycle of one session.
// It is safe for concurrent use; generation requests run outside the lock.
type SessionController struct {
	archive       ports.ArchiveWriter
	clipboard     ports.Clipboard
	coalescer     *Coalescer[struct{}]
	exporter      ports.Exporter
	generator     ports.DiagramGenerator
	history       *domain.History
	id            string
	inFlight      bool // A generation request is unresolved, whatever the status says
	mu            sync.Mutex
	notifier      ports.Notifier
	now           func() time.Time
	onStateChange func(domain.SessionState)
	rendered      string // Definition currently drawn on the target
	renderer      ports.Renderer
	state         domain.SessionState
	target        ports.RenderTarget
	timeout       time.Duration
	token         uint64
}

// NewSessionController creates a controller in the Idle state with an empty history
func NewSessionController(params SessionControllerParams) *SessionController {
	window := params.DebounceWindow
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	id := params.SessionID
	if id == "" {
		id = uuid.NewString()
	}
	notifier := params.Notifier
	if notifier == nil {
		notifier = nopNotifier{}
	}

	c := &SessionController{
		archive:       params.Archive,
		clipboard:     params.Clipboard,
		exporter:      params.Exporter,
		generator:     params.Generator,
		history:       domain.NewHistory(params.HistoryCapacity),
		id:            id,
		notifier:      notifier,
		now:           time.Now,
		onStateChange: params.OnStateChange,
		renderer:      params.Renderer,
		state:         domain.NewSessionState(),
		target:        params.RenderTarget,
		timeout:       params.RequestTimeout,
	}
	c.coalescer = NewCoalescer(window, func(struct{}) {
		if err := c.Submit(context.Background()); err != nil {
			logging.Logger.Debug("Coalesced submit did not complete", "session_id", c.id, "error", err)
		}
	})

	logging.Logger.Info("Session controller created",
		"session_id", id,
		"history_capacity", c.history.Capacity(),
		"debounce", window)
	return c
}

// ID returns the session identifier
func (c *SessionController) ID() string {
	return c.id
}

// State returns a snapshot of the session state
func (c *SessionController) State() domain.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// History returns the history entries, newest first
func (c *SessionController) History() []domain.HistoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Entries()
}

// SetDescription replaces the description. It never submits and keeps any
// previous result on screen.
func (c *SessionController) SetDescription(text string) {
	c.mu.Lock()
	c.state.Description = text
	c.state.DescriptionErr = domain.ValidateDescription(text)
	c.mu.Unlock()

	c.changed()
}

// SetDiagramType selects a catalog entry. Unknown ids leave the selection unchanged.
func (c *SessionController) SetDiagramType(id string) error {
	if err := domain.ValidateDiagramType(id); err != nil {
		logging.Logger.Warn("Rejected diagram type", "diagram_type", id)
		return err
	}

	c.mu.Lock()
	c.state.DiagramType = id
	c.mu.Unlock()

	c.changed()
	return nil
}

// ApplySuggestion fills description and type from a suggestion without submitting
func (c *SessionController) ApplySuggestion(s domain.Suggestion) error {
	if err := c.SetDiagramType(s.DiagramType); err != nil {
		return err
	}
	c.SetDescription(s.Description)
	return nil
}

// TriggerSubmit schedules a submission after the debounce window.
// Repeated triggers inside the window collapse into one submission that uses
// the inputs current when the window closes.
func (c *SessionController) TriggerSubmit() {
	c.coalescer.Trigger(struct{}{})
}

// SubmitPending reports whether a debounced submission is scheduled
func (c *SessionController) SubmitPending() bool {
	return c.coalescer.Pending()
}

// Submit sends the current description and type to the generation service and
// blocks until the result is applied. Calls made while a request is in flight
// return ErrSubmitInFlight without issuing a request.
func (c *SessionController) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight || c.state.Status == domain.StatusSubmitting {
		c.mu.Unlock()
		logging.Logger.Debug("Submit rejected, request in flight", "session_id", c.id)
		return domain.ErrSubmitInFlight
	}
	if err := domain.ValidateDescription(c.state.Description); err != nil {
		c.state.DescriptionErr = err
		c.mu.Unlock()
		c.notify(domain.NotifyError, MsgInvalidDescription)
		c.changed()
		return err
	}
	if err := domain.ValidateDiagramType(c.state.DiagramType); err != nil {
		c.mu.Unlock()
		return err
	}

	c.token++
	token := c.token
	req := ports.GenerationRequest{
		Description: c.state.Description,
		DiagramType: c.state.DiagramType,
	}
	c.inFlight = true
	c.state.Status = domain.StatusSubmitting
	c.state.LastError = nil
	c.mu.Unlock()
	c.changed()

	logging.Logger.Info("Submitting diagram request",
		"session_id", c.id,
		"diagram_type", req.DiagramType,
		"description_length", len(req.Description),
		"token", token)

	reqCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	definition, err := c.generator.Generate(reqCtx, req)
	if err == nil && strings.TrimSpace(definition) == "" {
		err = &domain.RequestError{Message: "empty diagram definition"}
	}

	if err != nil {
		return c.applyFailure(token, err)
	}
	return c.applySuccess(ctx, token, req, definition)
}

func (c *SessionController) applySuccess(
	ctx context.Context,
	token uint64,
	req ports.GenerationRequest,
	definition string,
) error {
	c.mu.Lock()
	c.inFlight = false
	if token != c.token {
		c.mu.Unlock()
		logging.Logger.Info("Discarding stale result", "session_id", c.id, "token", token)
		return domain.ErrStaleResult
	}

	entry := domain.HistoryEntry{
		CreatedAt:         c.now(),
		Definition:        definition,
		DiagramType:       req.DiagramType,
		SourceDescription: req.Description,
	}
	c.state.LastDefinition = definition
	c.state.LastError = nil
	c.state.Status = domain.StatusRendered
	c.history.Add(entry)
	renderErr := c.renderLocked(ctx, definition)
	c.mu.Unlock()

	logging.Logger.Info("Diagram generated",
		"session_id", c.id,
		"diagram_type", req.DiagramType,
		"definition_length", len(definition))

	c.notify(domain.NotifySuccess, MsgGenerated)
	if renderErr != nil {
		c.notify(domain.NotifyError, MsgRenderFailed)
	}
	c.changed()
	c.archiveEntry(ctx, entry)
	return nil
}

func (c *SessionController) applyFailure(token uint64, err error) error {
	c.mu.Lock()
	c.inFlight = false
	if token != c.token {
		c.mu.Unlock()
		logging.Logger.Info("Discarding stale failure", "session_id", c.id, "token", token, "error", err)
		return domain.ErrStaleResult
	}

	c.state.LastDefinition = ""
	c.state.LastError = err
	c.state.Status = domain.StatusFailed
	c.clearTargetLocked()
	c.mu.Unlock()

	switch {
	case domain.IsTransportError(err):
		logging.Logger.Error("Diagram generation failed", "session_id", c.id, "error", err)
		c.notify(domain.NotifyError, MsgTransportFailed)
	case domain.IsRequestError(err):
		logging.Logger.Warn("Generation service rejected the request", "session_id", c.id, "error", err)
		c.notify(domain.NotifyError, failureMessage(err))
	default:
		logging.Logger.Error("Diagram generation failed", "session_id", c.id, "error", err)
		c.notify(domain.NotifyError, MsgGenerateFailed)
	}
	c.changed()
	return err
}

// Reset returns the session to a fresh state. History is kept, and any
// in-flight or scheduled submission is dropped.
func (c *SessionController) Reset() {
	if c.coalescer.Cancel() {
		logging.Logger.Debug("Cancelled pending submission", "session_id", c.id)
	}

	c.mu.Lock()
	c.token++
	c.state = domain.NewSessionState()
	c.clearTargetLocked()
	c.mu.Unlock()

	logging.Logger.Info("Session reset", "session_id", c.id)
	c.changed()
}

// LoadFromHistory replays a history entry into the session without a request
func (c *SessionController) LoadFromHistory(ctx context.Context, entry domain.HistoryEntry) error {
	if entry.Definition == "" {
		return fmt.Errorf("failed to load history entry: %w", domain.ErrNothingRendered)
	}

	c.mu.Lock()
	c.token++
	c.state.Description = entry.SourceDescription
	c.state.DescriptionErr = domain.ValidateDescription(entry.SourceDescription)
	c.state.DiagramType = entry.DiagramType
	c.state.LastDefinition = entry.Definition
	c.state.LastError = nil
	c.state.Status = domain.StatusRendered
	renderErr := c.renderLocked(ctx, entry.Definition)
	c.mu.Unlock()

	logging.Logger.Info("Loaded diagram from history",
		"session_id", c.id,
		"diagram_type", entry.DiagramType)

	c.notify(domain.NotifyInfo, MsgLoadedFromHistory)
	if renderErr != nil {
		c.notify(domain.NotifyError, MsgRenderFailed)
	}
	c.changed()
	return nil
}

// LoadFromHistoryIndex replays the entry at index i (0 = newest)
func (c *SessionController) LoadFromHistoryIndex(ctx context.Context, i int) error {
	c.mu.Lock()
	entry, ok := c.history.Get(i)
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("failed to load history entry %d: %w", i, domain.ErrDiagramNotFound)
	}
	return c.LoadFromHistory(ctx, entry)
}

// RequestExport writes the current diagram as an image and returns its path.
// Failures are reported as *domain.ExportError and leave the session untouched.
func (c *SessionController) RequestExport(ctx context.Context, format domain.ExportFormat) (string, error) {
	c.mu.Lock()
	definition := c.state.LastDefinition
	diagramType := c.state.DiagramType
	c.mu.Unlock()

	if definition == "" {
		c.notify(domain.NotifyError, MsgNoDiagram)
		return "", &domain.ExportError{Op: "export", Err: domain.ErrNothingRendered}
	}
	if c.exporter == nil {
		c.notify(domain.NotifyError, MsgDownloadFailed)
		return "", &domain.ExportError{Op: "export", Err: errors.New("no exporter configured")}
	}

	logging.Logger.Info("Exporting diagram", "session_id", c.id, "format", format)

	path, err := c.exporter.Export(ctx, ports.ExportRequest{
		Definition:  definition,
		DiagramType: diagramType,
		Format:      format,
	})
	if err != nil {
		logging.Logger.Error("Export failed", "session_id", c.id, "format", format, "error", err)
		c.notify(domain.NotifyError, MsgDownloadFailed)
		var exportErr *domain.ExportError
		if errors.As(err, &exportErr) {
			return "", err
		}
		return "", &domain.ExportError{Op: "export", Err: err}
	}

	logging.Logger.Info("Diagram exported", "session_id", c.id, "path", path)
	c.notify(domain.NotifySuccess, fmt.Sprintf("Diagram downloaded as %s", strings.ToUpper(string(format))))
	return path, nil
}

// CopyDefinition copies the current definition to the clipboard
func (c *SessionController) CopyDefinition() error {
	c.mu.Lock()
	definition := c.state.LastDefinition
	c.mu.Unlock()

	if definition == "" {
		c.notify(domain.NotifyError, MsgCopyFailed)
		return &domain.ExportError{Op: "copy", Err: domain.ErrNothingToCopy}
	}
	if c.clipboard == nil {
		c.notify(domain.NotifyError, MsgCopyFailed)
		return &domain.ExportError{Op: "copy", Err: errors.New("no clipboard available")}
	}

	if err := c.clipboard.WriteText(definition); err != nil {
		logging.Logger.Error("Clipboard write failed", "session_id", c.id, "error", err)
		c.notify(domain.NotifyError, MsgCopyFailed)
		return &domain.ExportError{Op: "copy", Err: err}
	}

	c.notify(domain.NotifySuccess, MsgCopied)
	return nil
}

// Close drops any scheduled submission
func (c *SessionController) Close() {
	c.coalescer.Cancel()
	logging.Logger.Info("Session controller closed", "session_id", c.id)
}

// renderLocked hands definition to the renderer once per change. Caller holds c.mu.
func (c *SessionController) renderLocked(ctx context.Context, definition string) error {
	if c.renderer == nil || c.target == nil {
		return nil
	}
	if definition == c.rendered {
		return nil
	}
	if err := c.renderer.Render(ctx, definition, c.target); err != nil {
		logging.Logger.Error("Render failed", "session_id", c.id, "error", err)
		c.rendered = ""
		return fmt.Errorf("failed to render diagram: %w", err)
	}
	c.rendered = definition
	return nil
}

// clearTargetLocked empties the render target. Caller holds c.mu.
func (c *SessionController) clearTargetLocked() {
	c.rendered = ""
	if c.target != nil {
		c.target.Replace("")
	}
}

func (c *SessionController) archiveEntry(ctx context.Context, entry domain.HistoryEntry) {
	if c.archive == nil {
		return
	}
	err := c.archive.Save(context.WithoutCancel(ctx), domain.ArchivedDiagram{
		CreatedAt:   entry.CreatedAt,
		Definition:  entry.Definition,
		Description: entry.SourceDescription,
		DiagramType: entry.DiagramType,
		ID:          uuid.NewString(),
		SessionID:   c.id,
	})
	if err != nil {
		// Archive is best effort
		logging.Logger.Warn("Failed to archive diagram", "session_id", c.id, "error", err)
	}
}

func (c *SessionController) notify(kind domain.NotificationKind, message string) {
	c.notifier.Notify(domain.Notification{Kind: kind, Message: message})
}

func (c *SessionController) changed() {
	if c.onStateChange == nil {
		return
	}
	c.onStateChange(c.State())
}

func failureMessage(err error) string {
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return MsgGenerateFailed
}

type nopNotifier struct{}

func (nopNotifier) Notify(domain.Notification) {}
