package ports

import (
	"context"

	"github.com/umlstudio/umlstudio/internal/domain"
)

// ArchiveReader reads archived diagrams
type ArchiveReader interface {
	Get(ctx context.Context, id string) (*domain.ArchivedDiagram, error)
	List(ctx context.Context, limit int) ([]domain.ArchivedDiagram, error)
}

// ArchiveWriter stores and removes archived diagrams
type ArchiveWriter interface {
	Clear(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
	Save(ctx context.Context, diagram domain.ArchivedDiagram) error
}

// ArchiveRepository is the composite interface
type ArchiveRepository interface {
	ArchiveReader
	ArchiveWriter
	Close() error
}
