// Package testutil provides fixtures for tests that work on real directory
// trees.
//
//   - Tree: a temporary root plus a spec file written next to it
//   - FaultFS: a types.FS wrapper that fails chosen operations on chosen paths
//
// Trees live under t.TempDir() and are removed with it.
package testutil
