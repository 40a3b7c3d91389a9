package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/umlstudio/umlstudio/internal/ports"
)

// MockExporter is a testify mock for ports.Exporter
type MockExporter struct {
	mock.Mock
}

// NewMockExporter creates a mock that asserts its expectations on cleanup
func NewMockExporter(t testing.TB) *MockExporter {
	m := &MockExporter{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockExporter) Export(ctx context.Context, req ports.ExportRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
