// Package core runs a reconciliation: it reads the spec, scans the tree,
// plans retention and removal, and executes the removals.
//
// Every fatal check (scan errors, path escapes, unclassified disk items,
// missing spec items) completes before the first deletion. Phases hand
// fresh values to each other and never share mutable collections.
//
// External modification of the tree between scan and removal is not
// detected; removals that hit a vanished or changed item fail and abort.
package core
