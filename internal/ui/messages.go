package ui

import "github.com/umlstudio/umlstudio/internal/domain"

// Action messages. Each one represents something the user asked for through a
// key binding; Model handles them in Update.

// CopyDefinitionMsg requests copying the Mermaid code to the clipboard
type CopyDefinitionMsg struct{}

// ExportDiagramMsg requests the export format dialog
type ExportDiagramMsg struct{}

// GenerateMsg requests a (debounced) generation
type GenerateMsg struct{}

// PickDiagramTypeMsg requests the diagram type dialog
type PickDiagramTypeMsg struct{}

// QuitMsg requests quitting the application
type QuitMsg struct{}

// RefreshCacheMsg requests clearing the generation service cache
type RefreshCacheMsg struct{}

// ResetSessionMsg requests the reset confirmation dialog
type ResetSessionMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ToggleFullscreenMsg toggles the fullscreen preview
type ToggleFullscreenMsg struct{}

// Result messages from commands running off the input loop

type exportDoneMsg struct {
	err    error
	format domain.ExportFormat
	path   string
}

type refreshDoneMsg struct {
	err error
}

type tipTickMsg struct{}
