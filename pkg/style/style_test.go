package style

import (
	"testing"

	"github.com/arthur-debert/fontproxy/pkg/proxy"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestRenderStatusReport(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	tests := []struct {
		name     string
		report   proxy.StatusReport
		contains []string
	}{
		{
			name:     "original",
			report:   proxy.StatusReport{Reference: "arial", Face: "Arial", Status: proxy.StatusOriginal, FontKey: "Arial", FontFile: "arial.ttf"},
			contains: []string{"Original", "Arial", "arial.ttf"},
		},
		{
			name:     "redirected",
			report:   proxy.StatusReport{Reference: "Arial", Face: "Arial", Status: proxy.StatusRedirected, RedirectedTo: "Go"},
			contains: []string{"Redirected", "redirected to", "Go"},
		},
		{
			name:     "unresolvable",
			report:   proxy.StatusReport{Reference: "/x/missing.ttf", Status: proxy.StatusUnknown, Reason: "font file does not exist"},
			contains: []string{"Unknown", "/x/missing.ttf", "does not exist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderStatusReport(tt.report)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestRenderOutcome(t *testing.T) {
	assert.Contains(t, RenderOutcome(true, "Arial -> Go"), "Arial -> Go")
	assert.NotContains(t, RenderOutcome(true, "Arial -> Go"), "no change")
	assert.Contains(t, RenderOutcome(false, "Arial restored"), "no change")
}
