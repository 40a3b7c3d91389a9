package mocks

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockClipboard is a testify mock for ports.Clipboard
type MockClipboard struct {
	mock.Mock
}

// NewMockClipboard creates a mock that asserts its expectations on cleanup
func NewMockClipboard(t testing.TB) *MockClipboard {
	m := &MockClipboard{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockClipboard) WriteText(text string) error {
	return m.Called(text).Error(0)
}
