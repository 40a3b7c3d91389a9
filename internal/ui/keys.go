package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/umlstudio/umlstudio/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Diagram     DiagramKeys
	Navigation  NavigationKeys
	byName      map[string]KeyWithTip
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()

	byName := make(map[string]KeyWithTip, len(AllKeyDefinitions))
	for _, def := range AllKeyDefinitions {
		byName[def.Name] = buildBinding(def.Name, defaults, customKeys)
	}

	return KeyMap{
		Application: newApplicationKeys(byName),
		Diagram:     newDiagramKeys(byName),
		Navigation:  newNavigationKeys(byName),
		byName:      byName,
	}
}

// Action returns the action message bound to msg, or nil if msg is not an action key
func (k KeyMap) Action(msg tea.KeyMsg) tea.Msg {
	for _, def := range GetActionDefinitions() {
		binding, ok := k.byName[def.Name]
		if !ok {
			continue
		}
		if key.Matches(msg, binding.Binding) {
			return def.Msg
		}
	}
	return nil
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Diagram.Generate.Binding,
		k.Diagram.PickType.Binding,
		k.Diagram.Export.Binding,
		k.Diagram.Copy.Binding,
		k.Diagram.Reset.Binding,
		k.Navigation.NextPanel.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// Tips returns the tips of all bindings that define one, in definition order
func (k KeyMap) Tips() []Tip {
	var tips []Tip
	for _, def := range AllKeyDefinitions {
		if tip := k.byName[def.Name].Tip; tip != nil {
			tips = append(tips, *tip)
		}
	}
	return tips
}
