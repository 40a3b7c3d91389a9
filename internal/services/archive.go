package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/logging"
	"github.com/umlstudio/umlstudio/internal/ports"
)

// DefaultArchiveListLimit is the number of diagrams listed when no limit is given
const DefaultArchiveListLimit = 20

// ArchiveService browses and prunes the persistent diagram archive
type ArchiveService struct {
	repo ports.ArchiveRepository
}

// NewArchiveService creates a new ArchiveService
func NewArchiveService(repo ports.ArchiveRepository) *ArchiveService {
	return &ArchiveService{
		repo: repo,
	}
}

// List returns the most recent archived diagrams, newest first
func (s *ArchiveService) List(ctx context.Context, limit int) ([]domain.ArchivedDiagram, error) {
	if limit <= 0 {
		limit = DefaultArchiveListLimit
	}

	diagrams, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived diagrams: %w", err)
	}

	logging.Logger.Debug("Listed archived diagrams", "count", len(diagrams), "limit", limit)
	return diagrams, nil
}

// Get returns one archived diagram.
// An empty or unknown id returns domain.ErrDiagramNotFound.
func (s *ArchiveService) Get(ctx context.Context, id string) (*domain.ArchivedDiagram, error) {
	if id == "" {
		return nil, domain.ErrDiagramNotFound
	}

	diagram, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDiagramNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get archived diagram %s: %w", id, err)
	}
	return diagram, nil
}

// Delete removes one archived diagram
func (s *ArchiveService) Delete(ctx context.Context, id string) error {
	logging.Logger.Info("Deleting archived diagram", "id", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrDiagramNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete archived diagram %s: %w", id, err)
	}

	logging.Logger.Info("Archived diagram deleted", "id", id)
	return nil
}

// Clear removes every archived diagram and returns how many were removed
func (s *ArchiveService) Clear(ctx context.Context) (int64, error) {
	logging.Logger.Info("Clearing diagram archive")

	n, err := s.repo.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear archive: %w", err)
	}

	logging.Logger.Info("Diagram archive cleared", "removed", n)
	return n, nil
}

// Replay converts an archived diagram into a history entry the session can load
func (s *ArchiveService) Replay(ctx context.Context, id string) (domain.HistoryEntry, error) {
	diagram, err := s.Get(ctx, id)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	return domain.HistoryEntry{
		CreatedAt:         diagram.CreatedAt,
		Definition:        diagram.Definition,
		DiagramType:       diagram.DiagramType,
		SourceDescription: diagram.Description,
	}, nil
}
