// Package types holds the data model shared by the reconciliation phases:
// spec entries, path sets and the filesystem interface.
package types
