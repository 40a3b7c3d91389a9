package ui

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/logging"
)

const eventBufferSize = 64

type notificationMsg struct {
	notification domain.Notification
}

type stateChangedMsg struct {
	state domain.SessionState
}

// EventBridge carries controller callbacks into the Bubble Tea event loop.
// It implements ports.Notifier; pass StateChanged as the controller's
// OnStateChange hook.
type EventBridge struct {
	closeOnce sync.Once
	done      chan struct{}
	events    chan tea.Msg
}

// NewEventBridge creates a bridge with a bounded event buffer
func NewEventBridge() *EventBridge {
	return &EventBridge{
		done:   make(chan struct{}),
		events: make(chan tea.Msg, eventBufferSize),
	}
}

// Notify queues a notification for the UI
func (b *EventBridge) Notify(n domain.Notification) {
	b.send(notificationMsg{notification: n})
}

// StateChanged queues a state snapshot for the UI
func (b *EventBridge) StateChanged(state domain.SessionState) {
	b.send(stateChangedMsg{state: state})
}

// Wait returns a command that delivers the next queued event.
// The model re-issues it after handling each event.
func (b *EventBridge) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.events:
			return msg
		case <-b.done:
			return nil
		}
	}
}

// Close releases any pending Wait command. Later events are dropped.
func (b *EventBridge) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
	})
}

func (b *EventBridge) send(msg tea.Msg) {
	select {
	case <-b.done:
		return
	default:
	}

	select {
	case b.events <- msg:
	default:
		logging.Logger.Warn("UI event dropped, buffer full", "type", fmt.Sprintf("%T", msg))
	}
}
