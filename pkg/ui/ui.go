// Package ui renders a reconciliation report as styled terminal output,
// plain text or JSON.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/treeprune/pkg/ui/display"
	"github.com/arthur-debert/treeprune/pkg/ui/json"
	"github.com/arthur-debert/treeprune/pkg/ui/terminal"
	"github.com/arthur-debert/treeprune/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	Render(report display.Report) error
}

// NewRenderer creates a renderer for format. Auto is resolved against
// stdout when it is a file, and falls back to text otherwise.
func NewRenderer(format Format, stdout, stderr io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := stdout.(*os.File); ok {
			return NewRenderer(DetectFormat(file), stdout, stderr)
		}
		return NewRenderer(FormatText, stdout, stderr)
	case FormatTerminal:
		return terminal.New(stdout, stderr), nil
	case FormatText:
		return text.New(stdout, stderr), nil
	case FormatJSON:
		return json.New(stdout), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
