// Package terminal provides styled output for interactive terminals
package terminal

import (
	"io"

	"github.com/arthur-debert/fontproxy/pkg/proxy"
	"github.com/arthur-debert/fontproxy/pkg/style"
	"github.com/arthur-debert/fontproxy/pkg/ui/text"
)

// New creates a text renderer decorated with the terminal styles
func New(output io.Writer) (*text.Renderer, error) {
	return text.NewWithDecorator(output, decorator{}), nil
}

type decorator struct{}

func (decorator) Title(s string) string { return style.TitleStyle.Render(s) }
func (decorator) Muted(s string) string { return style.MutedStyle.Render(s) }

func (decorator) Error(s string) string {
	return style.ErrorIndicator + " " + style.ErrorStyle.Render(s)
}

func (decorator) Status(r proxy.StatusReport) string {
	return style.RenderStatusReport(r)
}

func (decorator) Outcome(o proxy.Outcome) string {
	return style.RenderOutcome(o.Changed, o.Detail)
}
