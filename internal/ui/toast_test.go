package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umlstudio/umlstudio/internal/domain"
)

func TestToastManager_ShowAndClear(t *testing.T) {
	tm := NewToastManager(time.Second)

	_, ok := tm.Current()
	assert.False(t, ok)
	assert.Empty(t, tm.View(80))

	cmd := tm.Show(domain.Notification{Kind: domain.NotifySuccess, Message: "done"})
	require.NotNil(t, cmd)

	n, ok := tm.Current()
	require.True(t, ok)
	assert.Equal(t, "done", n.Message)
	assert.Contains(t, tm.View(80), "done")

	tm.Clear(1)
	_, ok = tm.Current()
	assert.False(t, ok)
}

func TestToastManager_StaleClearKeepsNewerToast(t *testing.T) {
	tm := NewToastManager(time.Second)

	tm.Show(domain.Notification{Kind: domain.NotifyInfo, Message: "first"})
	tm.Show(domain.Notification{Kind: domain.NotifyError, Message: "second"})

	// Timer of the first toast fires after the second one was shown
	tm.Clear(1)

	n, ok := tm.Current()
	require.True(t, ok)
	assert.Equal(t, "second", n.Message)

	tm.Clear(2)
	_, ok = tm.Current()
	assert.False(t, ok)
}

func TestToastManager_DefaultDuration(t *testing.T) {
	tm := NewToastManager(0)
	assert.Equal(t, 3*time.Second, tm.duration)
}
