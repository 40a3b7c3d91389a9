package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// ResetConfirmForm asks before clearing the session
type ResetConfirmForm struct {
	Completed bool
	confirmed bool
	form      *huh.Form
}

// NewResetConfirmForm creates the reset confirmation dialog
func NewResetConfirmForm() *ResetConfirmForm {
	rf := &ResetConfirmForm{}

	rf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset the session?").
				Description("Clears the description and the current diagram. History is kept.").
				Affirmative("Reset").
				Negative("Cancel").
				Value(&rf.confirmed),
		),
	)

	return rf
}

func (rf *ResetConfirmForm) Init() tea.Cmd {
	return rf.form.Init()
}

func (rf *ResetConfirmForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		rf.confirmed = false
		rf.Completed = true
		return rf, nil
	}

	form, cmd := rf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		rf.form = f
	}

	switch rf.form.State {
	case huh.StateCompleted:
		rf.Completed = true
		return rf, nil
	case huh.StateAborted:
		rf.confirmed = false
		rf.Completed = true
		return rf, nil
	}

	return rf, cmd
}

func (rf *ResetConfirmForm) View() string {
	return rf.form.View()
}

// Confirmed reports whether the user accepted the reset
func (rf *ResetConfirmForm) Confirmed() bool {
	return rf.confirmed
}
