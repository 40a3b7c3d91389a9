package clipboard

import (
	"errors"
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard utility on this system")
	}

	var got string
	c := &SystemClipboard{write: func(s string) error {
		got = s
		return nil
	}}

	require.NoError(t, c.WriteText("classDiagram"))
	assert.Equal(t, "classDiagram", got)
}

func TestWriteText_Error(t *testing.T) {
	if clipboard.Unsupported {
		err := NewSystemClipboard().WriteText("x")
		assert.ErrorIs(t, err, ErrUnsupported)
		return
	}

	c := &SystemClipboard{write: func(string) error { return errors.New("xclip exited 1") }}

	err := c.WriteText("x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write clipboard")
}
