// Package executor deletes the final removal list from disk.
//
// Deletion is one call per path in list order: an empty-directory delete
// first, falling back to a plain unlink when the target is not a
// directory. Nothing is deleted recursively; a directory that still holds
// anything fails, and that failure aborts the run. The root itself is never
// deleted.
package executor
