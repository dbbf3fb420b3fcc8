// Package spec reads the flat "<class> <path>" specification format.
package spec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/treeprune/pkg/errors"
	"github.com/arthur-debert/treeprune/pkg/types"
)

const maxLineSize = 1024 * 1024

// Parse reads newline-delimited spec text into entries, in file order.
//
// Each line splits on its first space: the class may not contain spaces,
// the path keeps everything after the separator verbatim. An empty line
// yields an entry with empty class and path. Path syntax is not checked
// here.
func Parse(r io.Reader) ([]types.SpecEntry, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	var entries []types.SpecEntry
	lineNum := 0
	for sc.Scan() {
		lineNum++
		entry, err := ParseLine(sc.Text())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSpecParse, "line %d", lineNum).
				WithDetail("line", lineNum)
		}
		entry.Line = lineNum
		entries = append(entries, entry)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrSpecRead, "failed to read spec")
	}
	return entries, nil
}

// ParseLine splits a single spec line into its class and path.
func ParseLine(line string) (types.SpecEntry, error) {
	if line == "" {
		return types.SpecEntry{}, nil
	}
	class, path, ok := strings.Cut(line, " ")
	if !ok {
		return types.SpecEntry{}, fmt.Errorf("%q has no space between class and path", line)
	}
	return types.SpecEntry{Class: types.Class(class), Path: path}, nil
}
