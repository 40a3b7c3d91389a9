package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/umlstudio/umlstudio/internal/ports"
)

// MockDiagramGenerator is a testify mock for ports.DiagramGenerator
type MockDiagramGenerator struct {
	mock.Mock
}

// NewMockDiagramGenerator creates a mock that asserts its expectations on cleanup
func NewMockDiagramGenerator(t testing.TB) *MockDiagramGenerator {
	m := &MockDiagramGenerator{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDiagramGenerator) Generate(ctx context.Context, req ports.GenerationRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// MockCacheRefresher is a testify mock for ports.CacheRefresher
type MockCacheRefresher struct {
	mock.Mock
}

// NewMockCacheRefresher creates a mock that asserts its expectations on cleanup
func NewMockCacheRefresher(t testing.TB) *MockCacheRefresher {
	m := &MockCacheRefresher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCacheRefresher) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
