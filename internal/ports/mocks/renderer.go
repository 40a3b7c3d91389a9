package mocks

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/umlstudio/umlstudio/internal/ports"
)

// MockRenderer is a testify mock for ports.Renderer
type MockRenderer struct {
	mock.Mock
}

// NewMockRenderer creates a mock that asserts its expectations on cleanup
func NewMockRenderer(t testing.TB) *MockRenderer {
	m := &MockRenderer{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRenderer) Render(ctx context.Context, definition string, target ports.RenderTarget) error {
	return m.Called(ctx, definition, target).Error(0)
}

// RecordingTarget is a ports.RenderTarget that remembers every replacement
type RecordingTarget struct {
	mu       sync.Mutex
	contents []string
}

func (r *RecordingTarget) Replace(content string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contents = append(r.contents, content)
}

// Contents returns every value passed to Replace, in order
func (r *RecordingTarget) Contents() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.contents))
	copy(out, r.contents)
	return out
}

// Current returns the latest content, or "" when nothing was drawn
func (r *RecordingTarget) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.contents) == 0 {
		return ""
	}
	return r.contents[len(r.contents)-1]
}
