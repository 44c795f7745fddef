package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. Each color adapts to light and dark terminal backgrounds.
var (
	// FaceColor marks face names and table keys
	FaceColor = lipgloss.AdaptiveColor{Light: "#1F6FB2", Dark: "#6CB6FF"}

	// FileColor marks font file names and paths
	FileColor = lipgloss.AdaptiveColor{Light: "#7A5C99", Dark: "#C4A7E7"}

	ChangedColor = lipgloss.AdaptiveColor{Light: "#2E8B57", Dark: "#5FD787"}
	FailedColor  = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF7B72"}
	PendingColor = lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#F2CC60"}
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1B1F23", Dark: "#F0F3F6"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6A737D", Dark: "#8B949E"}
)
