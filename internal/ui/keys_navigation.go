package ui

// NavigationKeys defines key bindings for moving around the screen
type NavigationKeys struct {
	Down       KeyWithTip
	Fullscreen KeyWithTip
	NextPanel  KeyWithTip
	PrevPanel  KeyWithTip
	Select     KeyWithTip
	Up         KeyWithTip
}

func newNavigationKeys(byName map[string]KeyWithTip) NavigationKeys {
	return NavigationKeys{
		Down:       byName["down"],
		Fullscreen: byName["fullscreen"],
		NextPanel:  byName["next_panel"],
		PrevPanel:  byName["prev_panel"],
		Select:     byName["select"],
		Up:         byName["up"],
	}
}
