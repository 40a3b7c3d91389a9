package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported means no clipboard utility is available on this system
var ErrUnsupported = errors.New("system clipboard is not available")

// SystemClipboard writes to the OS clipboard through atotto/clipboard
type SystemClipboard struct {
	write func(string) error
}

// NewSystemClipboard creates a clipboard backed by the OS
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{write: clipboard.WriteAll}
}

// Available reports whether a clipboard utility was found
func (c *SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

// WriteText replaces the clipboard content
func (c *SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
