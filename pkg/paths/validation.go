package paths

import (
	"path"
	"path/filepath"
	"strings"
)

// Normalize turns a spec or scan path into its canonical form: slash
// separated, with "." segments, redundant separators and resolvable ".."
// segments removed. The empty path normalizes to ".".
func Normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// EscapesUpward reports whether a normalized path climbs above its base,
// i.e. is ".." or starts with a "../" segment.
func EscapesUpward(p string) bool {
	n := Normalize(p)
	return n == ".." || strings.HasPrefix(n, "../")
}

// Segments splits a normalized path into its components. "." has no
// components of its own and yields a single "." segment.
func Segments(p string) []string {
	return strings.Split(Normalize(p), "/")
}

// Prefixes returns every ancestor-or-self prefix of p, shortest first:
// "a/b/c" yields "a", "a/b", "a/b/c". The result is independent of the
// host separator.
func Prefixes(p string) []string {
	segs := Segments(p)
	out := make([]string, 0, len(segs))
	for i := 1; i <= len(segs); i++ {
		out = append(out, strings.Join(segs[:i], "/"))
	}
	return out
}

// ToNative converts a canonical relative path into host separators.
func ToNative(p string) string {
	return filepath.FromSlash(p)
}

// CommonPrefix returns the longest common prefix of the provided paths,
// compared component by component.
// Returns empty string if paths have no common prefix.
func CommonPrefix(paths ...string) string {
	if len(paths) == 0 {
		return ""
	}

	if len(paths) == 1 {
		return filepath.Clean(paths[0])
	}

	normalized := make([]string, len(paths))
	for i, p := range paths {
		normalized[i] = filepath.Clean(p)
	}

	first := strings.Split(normalized[0], string(filepath.Separator))

	commonParts := []string{}
	for i, part := range first {
		allMatch := true
		for _, p := range normalized[1:] {
			parts := strings.Split(p, string(filepath.Separator))
			if i >= len(parts) || parts[i] != part {
				allMatch = false
				break
			}
		}

		if !allMatch {
			break
		}

		commonParts = append(commonParts, part)
	}

	if len(commonParts) == 0 {
		return ""
	}

	result := filepath.Join(commonParts...)

	// Preserve leading separator for absolute paths
	if len(normalized[0]) > 0 && normalized[0][0] == filepath.Separator {
		result = string(filepath.Separator) + result
	}

	return result
}
