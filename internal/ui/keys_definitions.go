package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults  []string
	Help      string
	Msg       tea.Msg // Action message sent when the key is pressed (nil for context keys)
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all configurable key bindings.
// Action keys use control chords so they work while the description editor has focus.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit", Msg: QuitMsg{}},
	{Name: "help", Defaults: []string{"f1"}, Help: "show keyboard shortcuts", Msg: ShowHelpMsg{}, TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"ctrl+q"}, Help: "exit application", Msg: QuitMsg{}},

	// Diagram keys
	{Name: "copy", Defaults: []string{"ctrl+y"}, Help: "copy Mermaid code", Msg: CopyDefinitionMsg{}, TipFormat: "press %s to copy the Mermaid code to the clipboard"},
	{Name: "export", Defaults: []string{"ctrl+e"}, Help: "export diagram as image", Msg: ExportDiagramMsg{}, TipFormat: "press %s to save the diagram as PNG or JPEG"},
	{Name: "generate", Defaults: []string{"ctrl+s"}, Help: "generate diagram", Msg: GenerateMsg{}, TipFormat: "press %s to generate the diagram"},
	{Name: "pick_type", Defaults: []string{"ctrl+t"}, Help: "choose diagram type", Msg: PickDiagramTypeMsg{}, TipFormat: "press %s to switch between class, sequence and other diagrams"},
	{Name: "refresh_cache", Defaults: []string{"ctrl+l"}, Help: "clear the service cache", Msg: RefreshCacheMsg{}},
	{Name: "reset", Defaults: []string{"ctrl+r"}, Help: "reset session", Msg: ResetSessionMsg{}, TipFormat: "press %s to start over (history is kept)"},

	// Navigation keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next entry"},
	{Name: "fullscreen", Defaults: []string{"ctrl+f"}, Help: "toggle fullscreen preview", Msg: ToggleFullscreenMsg{}, TipFormat: "press %s to view the diagram fullscreen"},
	{Name: "next_panel", Defaults: []string{"tab"}, Help: "focus next panel", TipFormat: "press %s to move between editor, preview, history and suggestions"},
	{Name: "prev_panel", Defaults: []string{"shift+tab"}, Help: "focus previous panel"},
	{Name: "select", Defaults: []string{"enter"}, Help: "load history entry / apply suggestion"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous entry"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}

// GetActionDefinitions returns the key definitions that dispatch an action message.
func GetActionDefinitions() []KeyDefinition {
	var actions []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if def.Msg == nil {
			continue
		}
		actions = append(actions, def)
	}
	return actions
}
