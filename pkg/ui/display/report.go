// Package display turns a reconciliation outcome into renderer-neutral
// sections of text.
package display

import (
	stderrors "errors"
	"fmt"

	"github.com/arthur-debert/treeprune/pkg/core"
	"github.com/arthur-debert/treeprune/pkg/errors"
)

// Kind selects the style a renderer applies to a section
type Kind string

const (
	KindInfo    Kind = "Info"
	KindSuccess Kind = "Success"
	KindWarning Kind = "Warning"
	KindError   Kind = "Error"
)

// Report is what a run produced: a result, an error, or both.
type Report struct {
	Result       *core.Result
	Err          error
	DisplayLimit int
}

// Section is a heading plus optional path lines
type Section struct {
	Kind    Kind
	Heading string
	Paths   []string
	// Diagnostic sections go to the error stream
	Diagnostic bool
}

// Sections lays out a report in the order it should be printed.
func Sections(r Report) []Section {
	var out []Section

	if r.Result != nil && len(r.Result.IgnoredMissing) > 0 {
		heading := fmt.Sprintf("(ignored) already missing: %d", len(r.Result.IgnoredMissing))
		out = append(out, bounded(KindWarning, heading, r.Result.IgnoredMissing, r.DisplayLimit))
	}

	// The removal list is final once execution starts
	if r.Result != nil && (r.Err == nil || errors.IsErrorCode(r.Err, errors.ErrRemoval)) {
		out = append(out, Section{Kind: KindInfo, Heading: fmt.Sprintf("to remove: %d", len(r.Result.ToRemove))})
	}

	if r.Err != nil {
		out = append(out, errorSections(r.Err, r.DisplayLimit)...)
		return out
	}

	if r.Result == nil {
		return out
	}

	verb := "removed"
	if r.Result.DryRun {
		verb = "would remove"
	}
	out = append(out, Section{Kind: KindSuccess, Heading: fmt.Sprintf("%s: %d", verb, len(r.Result.Removed))})
	return out
}

func errorSections(err error, limit int) []Section {
	var out []Section

	switch errors.GetErrorCode(err) {
	case errors.ErrSpecFSMismatch, errors.ErrMissingItem:
		out = append(out, bounded(KindError, Message(err), errors.GetErrorPaths(err), limit))
	case errors.ErrPathEscape, errors.ErrRemoval:
		out = append(out, Section{Kind: KindError, Heading: Message(err), Diagnostic: true})
	default:
		out = append(out, Section{Kind: KindError, Heading: "Error: " + err.Error(), Diagnostic: true})
	}

	return append(out, Section{Kind: KindError, Heading: "aborting", Diagnostic: true})
}

// Message returns the human part of an error without its code prefix.
func Message(err error) string {
	var pruneErr *errors.PruneError
	if !stderrors.As(err, &pruneErr) {
		return err.Error()
	}
	if pruneErr.Wrapped != nil {
		return fmt.Sprintf("%s: %v", pruneErr.Message, pruneErr.Wrapped)
	}
	return pruneErr.Message
}

// bounded builds a section showing at most limit paths under heading.
func bounded(kind Kind, heading string, paths []string, limit int) Section {
	shown := paths
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	return Section{
		Kind:       kind,
		Heading:    fmt.Sprintf("%s (showing up to %d):", heading, limit),
		Paths:      shown,
		Diagnostic: true,
	}
}
