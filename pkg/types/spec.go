package types

// Class is an opaque label attached to spec paths. Any string is valid.
type Class string

// SpecEntry is one line of the specification file.
type SpecEntry struct {
	Line  int    `json:"line"`
	Class Class  `json:"class"`
	Path  string `json:"path"`
}

// MissingEntry is a spec entry whose path does not exist on disk.
type MissingEntry struct {
	Entry   SpecEntry `json:"entry"`
	Ignored bool      `json:"ignored"`
}
