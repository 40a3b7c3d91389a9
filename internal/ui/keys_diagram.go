package ui

// DiagramKeys defines key bindings that act on the diagram session
type DiagramKeys struct {
	Copy         KeyWithTip
	Export       KeyWithTip
	Generate     KeyWithTip
	PickType     KeyWithTip
	RefreshCache KeyWithTip
	Reset        KeyWithTip
}

func newDiagramKeys(byName map[string]KeyWithTip) DiagramKeys {
	return DiagramKeys{
		Copy:         byName["copy"],
		Export:       byName["export"],
		Generate:     byName["generate"],
		PickType:     byName["pick_type"],
		RefreshCache: byName["refresh_cache"],
		Reset:        byName["reset"],
	}
}
