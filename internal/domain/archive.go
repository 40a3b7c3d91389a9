package domain

import "time"

// ArchivedDiagram is a persisted copy of a successful generation
type ArchivedDiagram struct {
	CreatedAt   time.Time
	Definition  string
	Description string
	DiagramType string
	ID          string
	SessionID   string
}
