package server

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/umlstudio/umlstudio/internal/logging"
)

// ModelFactory creates the model for one SSH connection. cleanup runs once
// when the connection ends.
type ModelFactory func(sessionID string) (model tea.Model, cleanup func(), err error)

// sessionModel wraps the connection's model to release its resources on quit
type sessionModel struct {
	tea.Model
	cleanup   func()
	once      sync.Once
	sessionID string
	startTime time.Time
}

func newSessionModel(model tea.Model, cleanup func(), sessionID string) *sessionModel {
	return &sessionModel{
		Model:     model,
		cleanup:   cleanup,
		sessionID: sessionID,
		startTime: time.Now(),
	}
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		s.close()
	}

	updated, cmd := s.Model.Update(msg)
	s.Model = updated
	return s, cmd
}

// close releases the session once, whichever of quit or disconnect comes first
func (s *sessionModel) close() {
	s.once.Do(func() {
		if s.cleanup != nil {
			s.cleanup()
		}
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	})
}

// teaHandler creates a Bubble Tea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model, cleanup, err := s.newModel(sessionID)
	if err != nil {
		logging.Logger.Error("Failed to create session", "error", err, "session_id", sessionID)
		return errorModel{err}, nil
	}

	wrapped := newSessionModel(model, cleanup, sessionID)
	go func() {
		<-sess.Context().Done()
		wrapped.close()
	}()

	return wrapped, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// errorModel is a simple model that displays an error and exits
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
