package services

import (
	"time"

	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/ports"
)

// SessionControllerParams contains the collaborators and tuning for a SessionController.
// Only Generator is required.
type SessionControllerParams struct {
	Archive         ports.ArchiveWriter // Optional; nil disables archiving
	Clipboard       ports.Clipboard
	DebounceWindow  time.Duration
	Exporter        ports.Exporter
	Generator       ports.DiagramGenerator
	HistoryCapacity int
	Notifier        ports.Notifier
	OnStateChange   func(domain.SessionState) // Called after every state transition, outside the lock
	RenderTarget    ports.RenderTarget
	Renderer        ports.Renderer
	RequestTimeout  time.Duration // Zero means no timeout beyond the caller's context
	SessionID       string        // Generated when empty
}
