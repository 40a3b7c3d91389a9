package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/umlstudio/umlstudio/internal/domain"
)

// MockArchiveRepository is a testify mock for ports.ArchiveRepository
type MockArchiveRepository struct {
	mock.Mock
}

// NewMockArchiveRepository creates a mock that asserts its expectations on cleanup
func NewMockArchiveRepository(t testing.TB) *MockArchiveRepository {
	m := &MockArchiveRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockArchiveRepository) Get(ctx context.Context, id string) (*domain.ArchivedDiagram, error) {
	args := m.Called(ctx, id)
	diagram, _ := args.Get(0).(*domain.ArchivedDiagram)
	return diagram, args.Error(1)
}

func (m *MockArchiveRepository) List(ctx context.Context, limit int) ([]domain.ArchivedDiagram, error) {
	args := m.Called(ctx, limit)
	diagrams, _ := args.Get(0).([]domain.ArchivedDiagram)
	return diagrams, args.Error(1)
}

func (m *MockArchiveRepository) Clear(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArchiveRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockArchiveRepository) Save(ctx context.Context, diagram domain.ArchivedDiagram) error {
	return m.Called(ctx, diagram).Error(0)
}

func (m *MockArchiveRepository) Close() error {
	return m.Called().Error(0)
}
