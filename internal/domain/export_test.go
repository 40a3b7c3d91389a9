package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ExportFormat
		wantErr  bool
	}{
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{"jpeg", FormatJPEG, false},
		{"jpg", FormatJPEG, false},
		{" jpg ", FormatJPEG, false},
		{"svg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseExportFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExportFileName(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 20, 30, 0, time.UTC)

	assert.Equal(t, "uml_diagram_classDiagram_2024-05-01T10-20-30.000Z.png", ExportFileName("classDiagram", FormatPNG, at))
	assert.Equal(t, "uml_diagram_flowchart_2024-05-01T10-20-30.000Z.jpeg", ExportFileName("flowchart", FormatJPEG, at))
}

func TestExportFileName_SubSecondStamps(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 20, 30, 0, time.UTC)
	later := at.Add(250 * time.Millisecond)

	assert.Equal(t, "uml_diagram_flowchart_2024-05-01T10-20-30.250Z.png", ExportFileName("flowchart", FormatPNG, later))
	assert.NotEqual(t, ExportFileName("flowchart", FormatPNG, at), ExportFileName("flowchart", FormatPNG, later))

	local := time.Date(2024, 5, 1, 12, 20, 30, 0, time.FixedZone("CEST", 2*60*60))
	assert.Equal(t, ExportFileName("flowchart", FormatPNG, at), ExportFileName("flowchart", FormatPNG, local))
}
