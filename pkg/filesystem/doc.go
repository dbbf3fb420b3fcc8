// Package filesystem provides the operating system implementation of
// types.FS plus identity helpers built on top of it.
package filesystem
