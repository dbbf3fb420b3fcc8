// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"io"

	"github.com/arthur-debert/treeprune/pkg/ui/display"
	"github.com/arthur-debert/treeprune/pkg/ui/styles"
	"github.com/arthur-debert/treeprune/pkg/ui/text"
)

// Renderer lays out sections like the text renderer, styling each line
// with the style registered for its kind.
type Renderer struct {
	*text.Renderer
}

// New creates a new terminal renderer
func New(out, errOut io.Writer) *Renderer {
	return &Renderer{Renderer: text.NewDecorated(out, errOut, decorate)}
}

func decorate(kind display.Kind, line string) string {
	if kind == "" {
		return styles.GetStyle("Path").Render(line[2:])
	}
	return styles.GetStyle(string(kind)).Render(line)
}
