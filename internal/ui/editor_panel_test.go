package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/umlstudio/umlstudio/internal/domain"
)

func TestEditorPanel_KeepsOverLengthPaste(t *testing.T) {
	e := NewEditorPanel()
	e.SetSize(80, 12)
	pasted := strings.Repeat("é", domain.MaxDescriptionLength+100)

	e.SetValue(pasted)
	e.SetState(domain.SessionState{
		Description:    e.Value(),
		DescriptionErr: domain.ValidateDescription(e.Value()),
		DiagramType:    "classDiagram",
	})

	assert.Equal(t, pasted, e.Value())
	assert.True(t, e.invalid)
	assert.Contains(t, ansi.Strip(e.View()), "600/500")
}

func TestEditorPanel_ValidityFlag(t *testing.T) {
	tests := []struct {
		name        string
		description string
		invalid     bool
	}{
		{name: "empty is not flagged", description: "", invalid: false},
		{name: "within limit", description: "a sequence of logins", invalid: false},
		{name: "over limit", description: strings.Repeat("x", domain.MaxDescriptionLength+1), invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEditorPanel()
			e.SetState(domain.SessionState{
				Description:    tt.description,
				DescriptionErr: domain.ValidateDescription(tt.description),
				DiagramType:    "flowchart",
			})
			assert.Equal(t, tt.invalid, e.invalid)
		})
	}
}
