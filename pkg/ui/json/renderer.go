// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/treeprune/pkg/core"
	"github.com/arthur-debert/treeprune/pkg/errors"
	"github.com/arthur-debert/treeprune/pkg/ui/display"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// Error is the JSON form of a failed run
type Error struct {
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
	Paths   []string         `json:"paths,omitempty"`
	Total   int              `json:"total,omitempty"`
}

// Document is the single object written per run
type Document struct {
	OK     bool         `json:"ok"`
	Result *core.Result `json:"result,omitempty"`
	Error  *Error       `json:"error,omitempty"`
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// Render encodes the report as one JSON document. Path lists are not
// truncated by the display limit.
func (r *Renderer) Render(report display.Report) error {
	doc := Document{OK: report.Err == nil, Result: report.Result}
	if report.Err != nil {
		paths := errors.GetErrorPaths(report.Err)
		doc.Error = &Error{
			Code:    errors.GetErrorCode(report.Err),
			Message: display.Message(report.Err),
			Paths:   paths,
			Total:   len(paths),
		}
	}
	return r.encoder.Encode(doc)
}
