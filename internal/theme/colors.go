package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Generation status colors
const (
	ColorFailed     Color = "1" // Red
	ColorIdle       Color = "8" // Gray
	ColorRendered   Color = "2" // Green
	ColorSubmitting Color = "3" // Yellow
)

// UI semantic colors
const (
	ColorBorder        Color = "238" // Unfocused panel border
	ColorBorderFocused Color = "99"  // Focused panel border
	ColorError         Color = "196" // Bright red
	ColorHighlight     Color = "255" // White - emphasis
	ColorMuted         Color = "241" // Gray - secondary text
	ColorNormal        Color = "250" // Default text
	ColorSelected      Color = "237" // Selected list row background
	ColorSubtle        Color = "245" // Light gray - labels
	ColorVersion       Color = "240" // Dark gray
)

// Toast colors
const (
	ColorToastError   Color = "160"
	ColorToastInfo    Color = "33"
	ColorToastSuccess Color = "28"
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow
	ColorSpinner   Color = "205" // Pink
)

// Diagram syntax colors
const (
	ColorArrow      Color = "214" // Orange - relations and messages
	ColorComment    Color = "242"
	ColorKeyword    Color = "141" // Purple - diagram headers and keywords
	ColorLabel      Color = "114" // Green - quoted text and labels
	ColorLineNumber Color = "238"
)
