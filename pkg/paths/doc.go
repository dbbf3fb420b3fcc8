// Package paths implements the canonical path handling used by every
// reconciliation phase.
//
// Spec and scan paths are compared in a single canonical form: relative,
// slash separated and lexically cleaned (see Normalize). Conversion to host
// separators happens only at the filesystem boundary (ToNative).
package paths
