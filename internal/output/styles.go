package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette: named constants for all ANSI 256 colors used in the CLI.
// Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: component names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for informational notices such as an existing component.
	ColorYellow = lipgloss.Color("220")

	// colorBoldRed is used for failures (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark.
	colorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (component names, directories).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (descriptions, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleBold styles headings and tree roots.
	StyleBold = lipgloss.NewStyle().Bold(true)
)

// Message levels used by FormatMessage.
const (
	LevelSuccess = "success"
	LevelNotice  = "notice"
	LevelFailure = "failure"
)

// levelStyle returns the marker style for a message level.
// Unknown levels return an unstyled default.
func levelStyle(level string) lipgloss.Style {
	switch level {
	case LevelSuccess:
		return lipgloss.NewStyle().Foreground(colorGreenCheck)
	case LevelNotice:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case LevelFailure:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// levelMarker returns the glyph shown before a message of the given level.
func levelMarker(level string) string {
	switch level {
	case LevelSuccess:
		return "✔"
	case LevelNotice:
		return "!"
	case LevelFailure:
		return "✘"
	default:
		return "-"
	}
}

// FormatMessage renders a user-facing message with a level marker.
func FormatMessage(level, msg string) string {
	return levelStyle(level).Render(levelMarker(level)) + " " + msg
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	return FormatMessage(LevelSuccess, msg)
}

// FormatNotice renders an informational notice.
func FormatNotice(msg string) string {
	return FormatMessage(LevelNotice, msg)
}
