package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/umlstudio/umlstudio/internal/domain"
	portsmocks "github.com/umlstudio/umlstudio/internal/ports/mocks"
)

func TestArchiveService_ListDefaultsLimit(t *testing.T) {
	repo := portsmocks.NewMockArchiveRepository(t)
	repo.On("List", mock.Anything, DefaultArchiveListLimit).
		Return([]domain.ArchivedDiagram{{ID: "a"}}, nil).Once()

	diagrams, err := NewArchiveService(repo).List(context.Background(), 0)

	require.NoError(t, err)
	assert.Len(t, diagrams, 1)
}

func TestArchiveService_GetWrapsErrors(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		repoErr error
		wantErr error
	}{
		{name: "empty id", id: "", wantErr: domain.ErrDiagramNotFound},
		{name: "not found", id: "x", repoErr: domain.ErrDiagramNotFound, wantErr: domain.ErrDiagramNotFound},
		{name: "database error", id: "x", repoErr: errors.New("locked")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := portsmocks.NewMockArchiveRepository(t)
			if tt.id != "" {
				repo.On("Get", mock.Anything, tt.id).Return(nil, tt.repoErr).Once()
			}

			_, err := NewArchiveService(repo).Get(context.Background(), tt.id)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.Contains(t, err.Error(), "failed to get archived diagram")
			}
		})
	}
}

func TestArchiveService_Replay(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo := portsmocks.NewMockArchiveRepository(t)
	repo.On("Get", mock.Anything, "abc").Return(&domain.ArchivedDiagram{
		CreatedAt:   created,
		Definition:  "classDiagram\n  A --> B",
		Description: "two classes",
		DiagramType: "classDiagram",
		ID:          "abc",
	}, nil).Once()

	entry, err := NewArchiveService(repo).Replay(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, domain.HistoryEntry{
		CreatedAt:         created,
		Definition:        "classDiagram\n  A --> B",
		DiagramType:       "classDiagram",
		SourceDescription: "two classes",
	}, entry)
}

func TestArchiveService_Clear(t *testing.T) {
	repo := portsmocks.NewMockArchiveRepository(t)
	repo.On("Clear", mock.Anything).Return(int64(4), nil).Once()

	n, err := NewArchiveService(repo).Clear(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestArchiveService_Delete(t *testing.T) {
	repo := portsmocks.NewMockArchiveRepository(t)
	repo.On("Delete", mock.Anything, "gone").Return(domain.ErrDiagramNotFound).Once()

	err := NewArchiveService(repo).Delete(context.Background(), "gone")

	assert.ErrorIs(t, err, domain.ErrDiagramNotFound)
}
