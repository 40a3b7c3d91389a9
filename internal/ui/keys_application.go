package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/umlstudio/umlstudio/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit KeyWithTip
	Help      KeyWithTip
	Quit      KeyWithTip
}

func newApplicationKeys(byName map[string]KeyWithTip) ApplicationKeys {
	return ApplicationKeys{
		ForceQuit: byName["force_quit"],
		Help:      byName["help"],
		Quit:      byName["quit"],
	}
}

// buildBinding creates a KeyWithTip from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}
	helpKeys := strings.Join(keys, "/")

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys, def.Help),
		),
	}

	if def.TipFormat != "" && len(keys) > 0 {
		result.Tip = &Tip{Format: def.TipFormat, Keys: []string{keys[0]}}
	}

	return result
}
