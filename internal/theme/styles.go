package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Status icon styles
var (
	FailedIconStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)

	IdleIconStyle = lipgloss.NewStyle().
			Foreground(ColorIdle)

	RenderedIconStyle = lipgloss.NewStyle().
				Foreground(ColorRendered)

	SubmittingIconStyle = lipgloss.NewStyle().
				Foreground(ColorSubmitting)
)

// Panel styles
var (
	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocused).
				Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	CounterStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	CounterErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	ListItemSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorSelected).
				Bold(true)

	ListItemStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	ListDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Toast styles
var (
	ToastErrorStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Background(ColorToastError).
			Padding(0, 1)

	ToastInfoStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Background(ColorToastInfo).
			Padding(0, 1)

	ToastSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorToastSuccess).
				Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Diagram styles used by the terminal renderer
var (
	DiagramArrowStyle = lipgloss.NewStyle().
				Foreground(ColorArrow)

	DiagramCommentStyle = lipgloss.NewStyle().
				Foreground(ColorComment).
				Italic(true)

	DiagramKeywordStyle = lipgloss.NewStyle().
				Foreground(ColorKeyword).
				Bold(true)

	DiagramLabelStyle = lipgloss.NewStyle().
				Foreground(ColorLabel)

	DiagramLineNumberStyle = lipgloss.NewStyle().
				Foreground(ColorLineNumber)

	DiagramTextStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Hint styles
var (
	HintKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey).
			Bold(true)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorSpinner)

	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// StatusIconStyle returns the icon style for a generation status name
func StatusIconStyle(status string) lipgloss.Style {
	switch status {
	case "failed":
		return FailedIconStyle
	case "rendered":
		return RenderedIconStyle
	case "submitting":
		return SubmittingIconStyle
	default:
		return IdleIconStyle
	}
}
