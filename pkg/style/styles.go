// Package style holds the terminal styles fontproxy renders with: lipgloss
// for text and pterm for status badges.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(FaceColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(FileColor).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ChangedColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(FailedColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(PendingColor).
			Bold(true)
)

var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	PendingIndicator = MutedStyle.Render("○")
)

func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
