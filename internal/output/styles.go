package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: paths, package names, field names.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for the "changed" file status.
	ColorYellow = lipgloss.Color("220")

	colorGreen   = lipgloss.Color("82")
	colorRed     = lipgloss.Color("196")
	colorBoldRed = lipgloss.Color("204")
	colorCheck   = lipgloss.Color("10")
	colorDimGray = lipgloss.Color("240")
	colorHeader  = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (paths, package names, field names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (scope prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// File and check status values.
const (
	StatusChanged   = "changed"
	StatusUnchanged = "unchanged"
	StatusMoved     = "moved"
	StatusRestored  = "restored"
	StatusSkipped   = "skipped"
	StatusMissing   = "missing"
	StatusValid     = "ok"
	StatusFailed    = "failed"
)

func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusChanged, StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusMoved, StatusRestored, StatusValid:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusUnchanged:
		return lipgloss.NewStyle().Faint(true)
	case StatusMissing:
		return lipgloss.NewStyle().Foreground(colorRed)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps status words aligned across lines.
const minPathColumnWidth = 48

// FormatFileLine renders a path with a right-aligned, color-coded status.
//
// Format: f:<path>  <status>
func FormatFileLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("f:") + StyleNoun.Render(path) +
		strings.Repeat(" ", padding) + statusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(colorRed).Render("✘")
	return cross + " " + msg
}

// Panel renders a titled, rounded-border box around body.
func Panel(title, body string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDimGray).
		Padding(0, 1)

	content := strings.TrimRight(body, "\n")
	if title != "" {
		content = StyleSummary.Render(title) + "\n" + content
	}
	return box.Render(content)
}
