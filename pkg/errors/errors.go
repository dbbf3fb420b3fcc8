package errors

import (
	"errors"
	"fmt"
	"sort"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Spec errors
	ErrSpecRead  ErrorCode = "SPEC_READ"
	ErrSpecParse ErrorCode = "SPEC_PARSE"

	// Reconciliation errors
	ErrSpecFSMismatch ErrorCode = "SPEC_FS_MISMATCH"
	ErrMissingItem    ErrorCode = "MISSING_SPEC_ITEM"
	ErrPathEscape     ErrorCode = "PATH_ESCAPE"

	// FileSystem errors
	ErrScan    ErrorCode = "SCAN_FAILED"
	ErrRemoval ErrorCode = "REMOVAL_FAILED"
)

// Detail keys shared by producers and renderers
const (
	DetailPaths = "paths"
	DetailTotal = "total"
	DetailPath  = "path"
)

// PruneError represents a structured error with code and details
type PruneError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PruneError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PruneError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PruneError) Is(target error) bool {
	var targetErr *PruneError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PruneError with the given code and message
func New(code ErrorCode, message string) *PruneError {
	return &PruneError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PruneError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PruneError {
	return &PruneError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PruneError
func Wrap(err error, code ErrorCode, message string) *PruneError {
	if err == nil {
		return nil
	}
	return &PruneError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PruneError {
	if err == nil {
		return nil
	}
	return &PruneError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PruneError) WithDetail(key string, value interface{}) *PruneError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithPaths attaches a sorted copy of the offending paths and their count.
func (e *PruneError) WithPaths(paths []string) *PruneError {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)
	return e.WithDetail(DetailPaths, sorted).WithDetail(DetailTotal, len(sorted))
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pruneErr *PruneError
	if errors.As(err, &pruneErr) {
		return pruneErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PruneError
func GetErrorCode(err error) ErrorCode {
	var pruneErr *PruneError
	if errors.As(err, &pruneErr) {
		return pruneErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PruneError
func GetErrorDetails(err error) map[string]interface{} {
	var pruneErr *PruneError
	if errors.As(err, &pruneErr) {
		return pruneErr.Details
	}
	return nil
}

// GetErrorPaths returns the offending paths attached with WithPaths, if any.
func GetErrorPaths(err error) []string {
	details := GetErrorDetails(err)
	if details == nil {
		return nil
	}
	paths, _ := details[DetailPaths].([]string)
	return paths
}
