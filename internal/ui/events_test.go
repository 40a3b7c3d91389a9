package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umlstudio/umlstudio/internal/domain"
)

func TestEventBridge_DeliversInOrder(t *testing.T) {
	b := NewEventBridge()
	defer b.Close()

	b.StateChanged(domain.SessionState{Status: domain.StatusSubmitting})
	b.Notify(domain.Notification{Kind: domain.NotifySuccess, Message: "ok"})

	first, ok := b.Wait()().(stateChangedMsg)
	require.True(t, ok)
	assert.Equal(t, domain.StatusSubmitting, first.state.Status)

	second, ok := b.Wait()().(notificationMsg)
	require.True(t, ok)
	assert.Equal(t, "ok", second.notification.Message)
}

func TestEventBridge_CloseReleasesWaitAndDropsEvents(t *testing.T) {
	b := NewEventBridge()
	b.Close()
	b.Close()

	b.Notify(domain.Notification{Message: "late"})
	assert.Nil(t, b.Wait()())
}

func TestEventBridge_FullBufferDoesNotBlock(t *testing.T) {
	b := NewEventBridge()
	defer b.Close()

	for i := 0; i < eventBufferSize+10; i++ {
		b.Notify(domain.Notification{Message: "n"})
	}
	assert.Len(t, b.events, eventBufferSize)
}
