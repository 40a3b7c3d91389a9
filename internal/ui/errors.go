package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/umlstudio/umlstudio/internal/domain"
)

const (
	maxErrorLines  = 3
	errorPrefix    = "Error: "
	minErrorWidth  = 10
	truncationMark = "..."
)

// describeError returns the user-facing text for a session error
func describeError(err error) string {
	var reqErr *domain.RequestError
	if !errors.As(err, &reqErr) {
		return err.Error()
	}
	if reqErr.Details != "" {
		return reqErr.Message + " (" + reqErr.Details + ")"
	}
	return reqErr.Message
}

// formatErrorForDisplay formats an error message for TUI display.
// The result is word-wrapped to maxWidth, limited to maxErrorLines and ends
// with "..." when the message had to be cut.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	if maxWidth < minErrorWidth {
		maxWidth = minErrorWidth
	}

	message := strings.Join(strings.Fields(describeError(err)), " ")
	if message == "" {
		return errorPrefix + "unknown error"
	}

	lines := strings.Split(ansi.Wordwrap(errorPrefix+message, maxWidth, ""), "\n")
	if len(lines) <= maxErrorLines {
		return strings.Join(lines, "\n")
	}

	lines = lines[:maxErrorLines]
	last := lines[maxErrorLines-1]
	lines[maxErrorLines-1] = ansi.Truncate(last, maxWidth-len(truncationMark), "") + truncationMark
	return strings.Join(lines, "\n")
}
