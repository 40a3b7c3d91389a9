package storage

import (
	"github.com/umlstudio/umlstudio/internal/domain"
)

// diagramModelToDomain converts a DiagramModel (GORM) to domain.ArchivedDiagram
func diagramModelToDomain(m DiagramModel) domain.ArchivedDiagram {
	return domain.ArchivedDiagram{
		CreatedAt:   m.CreatedAt,
		Definition:  m.Definition,
		Description: m.Description,
		DiagramType: m.DiagramType,
		ID:          m.ID,
		SessionID:   m.SessionID,
	}
}

// domainToDiagramModel converts a domain.ArchivedDiagram to DiagramModel (GORM)
func domainToDiagramModel(d domain.ArchivedDiagram) DiagramModel {
	return DiagramModel{
		CreatedAt:   d.CreatedAt,
		Definition:  d.Definition,
		Description: d.Description,
		DiagramType: d.DiagramType,
		ID:          d.ID,
		SessionID:   d.SessionID,
	}
}
