package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionState_Defaults(t *testing.T) {
	st := NewSessionState()

	assert.Equal(t, "", st.Description)
	assert.Equal(t, "classDiagram", st.DiagramType)
	assert.Equal(t, StatusIdle, st.Status)
	assert.False(t, st.HasDefinition())
	assert.NoError(t, st.LastError)
}

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", true},
		{"single char", "a", false},
		{"typical", "Model a customer management system", false},
		{"exactly max", strings.Repeat("a", MaxDescriptionLength), false},
		{"one over max", strings.Repeat("a", MaxDescriptionLength+1), true},
		{"multibyte at max", strings.Repeat("é", MaxDescriptionLength), false},
		{"multibyte over max", strings.Repeat("é", MaxDescriptionLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDescription(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateDiagramType(t *testing.T) {
	for _, id := range DiagramTypeIDs() {
		t.Run(id, func(t *testing.T) {
			assert.NoError(t, ValidateDiagramType(id))
		})
	}

	err := ValidateDiagramType("ganttChart")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.True(t, errors.Is(err, ErrUnknownDiagramType))
}

func TestGenerationStatus_Symbol(t *testing.T) {
	tests := []struct {
		status   GenerationStatus
		expected string
	}{
		{StatusIdle, SymbolIdle},
		{StatusSubmitting, SymbolSubmitting},
		{StatusRendered, SymbolRendered},
		{StatusFailed, SymbolFailed},
		{GenerationStatus("bogus"), SymbolIdle},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.Symbol())
		})
	}
}

func TestDefaultDiagramType_IsFirstCatalogEntry(t *testing.T) {
	assert.Equal(t, DiagramTypes[0].ID, DefaultDiagramType().ID)
	assert.Nil(t, GetDiagramType("nope"))
	require.NotNil(t, GetDiagramType("flowchart"))
	assert.Equal(t, "Flowchart", GetDiagramType("flowchart").Label)
}

func TestSuggestions_UseCatalogTypes(t *testing.T) {
	for _, s := range Suggestions {
		assert.True(t, IsValidDiagramType(s.DiagramType), s.Title)
		assert.NoError(t, ValidateDescription(s.Description), s.Title)
	}
}

func TestErrors_Messages(t *testing.T) {
	transport := &TransportError{Err: errors.New("connection refused")}
	assert.Contains(t, transport.Error(), "could not reach")
	assert.True(t, IsTransportError(transport))
	assert.False(t, IsRequestError(transport))

	request := &RequestError{Message: "invalid description"}
	assert.Contains(t, request.Error(), "returned an error")
	assert.True(t, IsRequestError(request))
	assert.False(t, IsTransportError(request))

	exportErr := &ExportError{Op: "copy", Err: ErrNothingToCopy}
	assert.True(t, errors.Is(exportErr, ErrNothingToCopy))
}
