package domain

import (
	"fmt"
	"unicode/utf8"
)

// MaxDescriptionLength is the upper bound for a description, in characters
const MaxDescriptionLength = 500

// GenerationStatus is the state of the generate/render cycle of a session
type GenerationStatus string

const (
	StatusFailed     GenerationStatus = "failed"
	StatusIdle       GenerationStatus = "idle"
	StatusRendered   GenerationStatus = "rendered"
	StatusSubmitting GenerationStatus = "submitting"
)

// Status symbols (Unicode)
const (
	SymbolFailed     = "✗"
	SymbolIdle       = "○"
	SymbolRendered   = "●"
	SymbolSubmitting = "◐"
)

// Symbol returns the status symbol shown in the status bar
func (s GenerationStatus) Symbol() string {
	switch s {
	case StatusFailed:
		return SymbolFailed
	case StatusRendered:
		return SymbolRendered
	case StatusSubmitting:
		return SymbolSubmitting
	default:
		return SymbolIdle
	}
}

// SessionState is a snapshot of one authoring session.
// A Rendered status always comes with a non-empty LastDefinition.
type SessionState struct {
	Description    string
	DescriptionErr error // Set when Description fails validation
	DiagramType    string
	LastDefinition string
	LastError      error
	Status         GenerationStatus
}

// NewSessionState returns the state of a fresh session
func NewSessionState() SessionState {
	return SessionState{
		DiagramType: DefaultDiagramType().ID,
		Status:      StatusIdle,
	}
}

// HasDefinition reports whether a diagram definition is present
func (s SessionState) HasDefinition() bool {
	return s.LastDefinition != ""
}

// IsDescriptionValid reports whether the current description may be submitted
func (s SessionState) IsDescriptionValid() bool {
	return s.DescriptionErr == nil && ValidateDescription(s.Description) == nil
}

// ValidateDescription checks that a description has 1 to MaxDescriptionLength characters.
// Over-long descriptions are rejected, never truncated.
func ValidateDescription(description string) error {
	n := utf8.RuneCountInString(description)
	if n == 0 {
		return &ValidationError{Field: "description", Reason: "description is required"}
	}
	if n > MaxDescriptionLength {
		return &ValidationError{
			Field:  "description",
			Reason: fmt.Sprintf("description must be 1-%d characters (got %d)", MaxDescriptionLength, n),
		}
	}
	return nil
}

// ValidateDiagramType checks that id is in the catalog
func ValidateDiagramType(id string) error {
	if IsValidDiagramType(id) {
		return nil
	}
	return &ValidationError{
		Err:    ErrUnknownDiagramType,
		Field:  "diagram type",
		Reason: fmt.Sprintf("%q is not a supported diagram type", id),
	}
}
