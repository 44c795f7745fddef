// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/fontproxy/pkg/fontref"
	"github.com/arthur-debert/fontproxy/pkg/proxy"
	"github.com/arthur-debert/fontproxy/pkg/ui/view"
)

// Decorator styles the fragments the renderer lays out
type Decorator interface {
	Title(s string) string
	Muted(s string) string
	Error(s string) string
	Status(r proxy.StatusReport) string
	Outcome(o proxy.Outcome) string
}

// Renderer provides line-oriented output. With the Plain decorator no
// escape sequences are written.
type Renderer struct {
	output io.Writer
	deco   Decorator
}

// New creates a new plain text renderer
func New(output io.Writer) (*Renderer, error) {
	return NewWithDecorator(output, Plain{}), nil
}

// NewWithDecorator creates a renderer that styles fragments with deco
func NewWithDecorator(output io.Writer, deco Decorator) *Renderer {
	return &Renderer{output: output, deco: deco}
}

// RenderResult renders a known result type, falling back to %+v
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case proxy.StatusReport:
		return r.println(r.deco.Status(v))
	case proxy.Outcome:
		return r.println(r.deco.Outcome(v))
	case fontref.Inspection:
		return r.println(r.inspection(v))
	case view.List:
		return r.println(r.list(v))
	case view.Table:
		return r.println(r.table(v))
	case []view.Table:
		blocks := make([]string, 0, len(v))
		for _, t := range v {
			blocks = append(blocks, r.table(t))
		}
		return r.println(strings.Join(blocks, "\n\n"))
	case string:
		return r.println(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	return r.println(r.deco.Error("Error: " + err.Error()))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(msg)
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

func (r *Renderer) inspection(in fontref.Inspection) string {
	var b strings.Builder
	b.WriteString(r.deco.Title(in.Input) + " " + r.deco.Muted("("+in.Kind.String()+")"))
	for _, c := range in.Conversions {
		value := c.Value
		if c.Error != "" {
			value = r.deco.Error(c.Error)
		}
		fmt.Fprintf(&b, "\n  %-20s %s", c.Target, value)
	}
	return b.String()
}

func (r *Renderer) list(l view.List) string {
	var b strings.Builder
	if l.Title != "" {
		b.WriteString(r.deco.Title(l.Title))
	}
	if len(l.Items) == 0 {
		b.WriteString("\n  " + r.deco.Muted("(none)"))
	}
	for _, item := range l.Items {
		b.WriteString("\n  " + item)
	}
	return strings.TrimPrefix(b.String(), "\n")
}

func (r *Renderer) table(t view.Table) string {
	var b strings.Builder
	b.WriteString(r.deco.Title("[" + t.Name + "]"))
	if len(t.Entries) == 0 {
		b.WriteString("\n  " + r.deco.Muted("(empty)"))
	}
	for _, e := range t.Entries {
		b.WriteString("\n  " + e.Key + r.deco.Muted(" = ") + e.Value)
	}
	return b.String()
}

// Plain leaves every fragment unstyled
type Plain struct{}

func (Plain) Title(s string) string { return s }
func (Plain) Muted(s string) string { return s }
func (Plain) Error(s string) string { return s }

func (Plain) Status(r proxy.StatusReport) string {
	face := r.Face
	if face == "" {
		face = r.Reference
	}
	line := face + ": " + r.Status.String()
	switch {
	case r.Status == proxy.StatusRedirected:
		line += " (-> " + r.RedirectedTo + ")"
	case r.FontFile != "":
		line += " (" + r.FontKey + " -> " + r.FontFile + ")"
	case r.Reason != "":
		line += " (" + r.Reason + ")"
	}
	return line
}

func (Plain) Outcome(o proxy.Outcome) string {
	if o.Changed {
		return o.Detail
	}
	return o.Detail + " (no change)"
}
