package domain

import (
	"fmt"
	"strings"
	"time"
)

// ExportFormat is a raster image format a diagram can be exported to
type ExportFormat string

const (
	FormatJPEG ExportFormat = "jpeg"
	FormatPNG  ExportFormat = "png"
)

// ExportFormats lists the supported formats, default first
var ExportFormats = []ExportFormat{FormatPNG, FormatJPEG}

// ParseExportFormat parses a user-supplied format name ("jpg" is accepted for JPEG)
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return "", &ValidationError{Field: "export format", Reason: fmt.Sprintf("unsupported format %q (use png or jpeg)", s)}
	}
}

// Extension returns the file extension, without the dot
func (f ExportFormat) Extension() string {
	return string(f)
}

// exportStampLayout is RFC3339 in UTC with millisecond precision and no colons
const exportStampLayout = "2006-01-02T15-04-05.000Z"

// ExportFileName builds the download name used for exported images,
// e.g. uml_diagram_classDiagram_2024-05-01T10-20-30.000Z.png
func ExportFileName(diagramType string, format ExportFormat, at time.Time) string {
	stamp := at.UTC().Format(exportStampLayout)
	return fmt.Sprintf("uml_diagram_%s_%s.%s", diagramType, stamp, format.Extension())
}
