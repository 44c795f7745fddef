package style

import (
	"fmt"

	"github.com/arthur-debert/fontproxy/pkg/proxy"
	"github.com/pterm/pterm"
)

// StatusStyle returns the badge style for a font status
func StatusStyle(status proxy.FontStatus) *pterm.Style {
	switch status {
	case proxy.StatusOriginal:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case proxy.StatusReplaced:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case proxy.StatusRedirected:
		return pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusBadge renders a status as a fixed-width badge
func StatusBadge(status proxy.FontStatus) string {
	return StatusStyle(status).Sprint(fmt.Sprintf(" %-10s ", status))
}

// RenderStatusReport renders the one or two lines describing a report
func RenderStatusReport(r proxy.StatusReport) string {
	face := r.Face
	if face == "" {
		face = r.Reference
	}
	line := StatusBadge(r.Status) + " " + Bold(face)

	switch {
	case r.Status == proxy.StatusRedirected:
		line += "\n" + Indent(MutedStyle.Render("redirected to ")+KeyStyle.Render(r.RedirectedTo), 1)
	case r.FontFile != "":
		line += "\n" + Indent(MutedStyle.Render(r.FontKey+" -> ")+PathStyle.Render(r.FontFile), 1)
	case r.Reason != "":
		line += "\n" + Indent(ErrorStyle.Render(r.Reason), 1)
	}
	return line
}

// RenderOutcome renders the result of a change
func RenderOutcome(changed bool, detail string) string {
	if changed {
		return SuccessIndicator + " " + detail
	}
	return PendingIndicator + " " + detail + MutedStyle.Render(" (no change)")
}
