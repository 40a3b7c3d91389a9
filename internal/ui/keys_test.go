package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umlstudio/umlstudio/internal/config"
)

func TestNewKeyMap_UsesDefaults(t *testing.T) {
	keys := NewKeyMap(nil)

	assert.Equal(t, []string{"ctrl+s"}, keys.Diagram.Generate.Binding.Keys())
	assert.Equal(t, []string{"down", "j"}, keys.Navigation.Down.Binding.Keys())
	assert.Equal(t, "ctrl+s", keys.Diagram.Generate.Binding.Help().Key)
	assert.Equal(t, "generate diagram", keys.Diagram.Generate.Binding.Help().Desc)
}

func TestNewKeyMap_CustomKeysOverrideDefaults(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{
		"generate": {"ctrl+g", "f5"},
	})

	assert.Equal(t, []string{"ctrl+g", "f5"}, keys.Diagram.Generate.Binding.Keys())
	assert.Equal(t, "ctrl+g/f5", keys.Diagram.Generate.Binding.Help().Key)
	require.NotNil(t, keys.Diagram.Generate.Tip)
	assert.Equal(t, "press ctrl+g to generate the diagram", keys.Diagram.Generate.Tip.String())
}

func TestKeyDefinitions_NamesAndDefaultsAreUnique(t *testing.T) {
	names := make(map[string]bool)
	keys := make(map[string]string)

	for _, def := range AllKeyDefinitions {
		assert.False(t, names[def.Name], "duplicate name %s", def.Name)
		names[def.Name] = true
		assert.NotEmpty(t, def.Help, "missing help for %s", def.Name)

		for _, k := range def.Defaults {
			if other, ok := keys[k]; ok {
				t.Errorf("key %q bound to both %s and %s", k, other, def.Name)
			}
			keys[k] = def.Name
		}
	}

	assert.Len(t, GetValidKeyNames(), len(AllKeyDefinitions))
}

func TestKeyMapAction(t *testing.T) {
	keys := NewKeyMap(nil)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want tea.Msg
	}{
		{name: "generate", msg: tea.KeyMsg{Type: tea.KeyCtrlS}, want: GenerateMsg{}},
		{name: "reset", msg: tea.KeyMsg{Type: tea.KeyCtrlR}, want: ResetSessionMsg{}},
		{name: "copy", msg: tea.KeyMsg{Type: tea.KeyCtrlY}, want: CopyDefinitionMsg{}},
		{name: "help", msg: tea.KeyMsg{Type: tea.KeyF1}, want: ShowHelpMsg{}},
		{name: "force quit", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, want: QuitMsg{}},
		{name: "plain rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, want: nil},
		{name: "navigation key", msg: tea.KeyMsg{Type: tea.KeyTab}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Action(tt.msg))
		})
	}
}

func TestKeyBindingsConfig_ValidatesAgainstKnownNames(t *testing.T) {
	valid := config.KeyBindingsConfig{"generate": {"ctrl+g"}}
	assert.NoError(t, valid.Validate(GetValidKeyNames()))

	unknown := config.KeyBindingsConfig{"attach": {"a"}}
	assert.Error(t, unknown.Validate(GetValidKeyNames()))
}
