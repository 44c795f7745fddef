// Package ui renders command results in the selected output format:
// styled terminal text, plain text, JSON or YAML.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/fontproxy/pkg/ui/json"
	"github.com/arthur-debert/fontproxy/pkg/ui/terminal"
	"github.com/arthur-debert/fontproxy/pkg/ui/text"
	"github.com/arthur-debert/fontproxy/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(output), output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
