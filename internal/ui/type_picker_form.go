package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/umlstudio/umlstudio/internal/domain"
)

// TypePickerResult contains the chosen diagram type
type TypePickerResult struct {
	Cancelled   bool
	DiagramType string
}

// TypePickerForm lets the user choose an entry of the diagram type catalog
type TypePickerForm struct {
	Completed bool
	form      *huh.Form
	result    TypePickerResult
}

// NewTypePickerForm creates the picker with current preselected
func NewTypePickerForm(current string) *TypePickerForm {
	tf := &TypePickerForm{
		result: TypePickerResult{DiagramType: current},
	}

	options := make([]huh.Option[string], 0, len(domain.DiagramTypes))
	for _, t := range domain.DiagramTypes {
		label := fmt.Sprintf("%-18s %-13s AI support: %s", t.Label, t.Difficulty, t.AISupport)
		options = append(options, huh.NewOption(label, t.ID))
	}

	tf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Diagram type").
				DescriptionFunc(func() string {
					if t := domain.GetDiagramType(tf.result.DiagramType); t != nil {
						return t.Description + "\nExample: " + t.Example
					}
					return ""
				}, &tf.result.DiagramType).
				Options(options...).
				Value(&tf.result.DiagramType),
		),
	)

	return tf
}

func (tf *TypePickerForm) Init() tea.Cmd {
	return tf.form.Init()
}

func (tf *TypePickerForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		tf.result.Cancelled = true
		tf.Completed = true
		return tf, nil
	}

	form, cmd := tf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		tf.form = f
	}

	switch tf.form.State {
	case huh.StateCompleted:
		tf.Completed = true
		return tf, nil
	case huh.StateAborted:
		tf.result.Cancelled = true
		tf.Completed = true
		return tf, nil
	}

	return tf, cmd
}

func (tf *TypePickerForm) View() string {
	return tf.form.View()
}

// Result returns the form result
func (tf *TypePickerForm) Result() TypePickerResult {
	return tf.result
}
