package storage

import "time"

// DiagramModel is the GORM model for the diagrams table
type DiagramModel struct {
	CreatedAt   time.Time `gorm:"not null;index:idx_created_at"`
	Definition  string    `gorm:"not null"`
	Description string    `gorm:"not null;default:''"`
	DiagramType string    `gorm:"not null;index:idx_diagram_type"`
	ID          string    `gorm:"primaryKey"`
	SessionID   string    `gorm:"not null;default:'';index:idx_session_id"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (DiagramModel) TableName() string { return "diagrams" }
