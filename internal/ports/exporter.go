package ports

import (
	"context"

	"github.com/umlstudio/umlstudio/internal/domain"
)

// ExportRequest describes one image export
type ExportRequest struct {
	Definition  string
	DiagramType string
	Format      domain.ExportFormat
}

// Exporter produces an image file from a diagram definition
type Exporter interface {
	// Export writes the image and returns its path
	Export(ctx context.Context, req ExportRequest) (string, error)
}
