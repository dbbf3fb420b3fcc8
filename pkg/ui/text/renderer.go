// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/treeprune/pkg/ui/display"
)

// Decorator styles a line before it is written. Kind is empty for path lines.
type Decorator func(kind display.Kind, line string) string

// Renderer writes report sections as plain lines. Diagnostic sections go to
// errOut, the rest to out.
type Renderer struct {
	out      io.Writer
	errOut   io.Writer
	decorate Decorator
}

// New creates a new text renderer
func New(out, errOut io.Writer) *Renderer {
	return NewDecorated(out, errOut, nil)
}

// NewDecorated creates a text renderer that passes each line through decorate
func NewDecorated(out, errOut io.Writer, decorate Decorator) *Renderer {
	if decorate == nil {
		decorate = func(_ display.Kind, line string) string { return line }
	}
	return &Renderer{out: out, errOut: errOut, decorate: decorate}
}

// Render writes every section of the report
func (r *Renderer) Render(report display.Report) error {
	for _, section := range display.Sections(report) {
		w := r.out
		if section.Diagnostic {
			w = r.errOut
		}
		if _, err := fmt.Fprintln(w, r.decorate(section.Kind, section.Heading)); err != nil {
			return err
		}
		for _, p := range section.Paths {
			if _, err := fmt.Fprintln(w, r.decorate("", "  "+p)); err != nil {
				return err
			}
		}
	}
	return nil
}
