package server

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModel struct {
	updates int
}

func (m *stubModel) Init() tea.Cmd { return nil }

func (m *stubModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	m.updates++
	return m, nil
}

func (m *stubModel) View() string { return "stub" }

func TestSessionModel_CleansUpOnceOnQuit(t *testing.T) {
	inner := &stubModel{}
	calls := 0
	s := newSessionModel(inner, func() { calls++ }, "alice@127.0.0.1")

	updated, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Same(t, s, updated)
	assert.Equal(t, 0, calls)

	s.Update(tea.QuitMsg{})
	s.Update(tea.QuitMsg{})
	s.close()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 3, inner.updates)
	assert.Equal(t, "stub", s.View())
}

func TestErrorModel(t *testing.T) {
	m := errorModel{err: errors.New("archive unavailable")}

	assert.Equal(t, "Error: archive unavailable\n", m.View())
	_, cmd := m.Update(nil)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestNewServer(t *testing.T) {
	_, err := NewServer(Options{HostKeyDir: t.TempDir()})
	assert.Error(t, err)

	s, err := NewServer(Options{
		AuthorizedKeysPath: writeAuthorizedKeys(t),
		Host:               "localhost",
		HostKeyDir:         t.TempDir(),
		NewModel: func(string) (tea.Model, func(), error) {
			return &stubModel{}, nil, nil
		},
		Port: "23234",
	})
	require.NoError(t, err)
	assert.Equal(t, "localhost:23234", s.Address())
}
