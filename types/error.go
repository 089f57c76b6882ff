package types

import "fmt"

// ErrorCode classifies the fatal run errors.
// Every failure aborts the run immediately; there is no local
// recovery anywhere in the system.
type ErrorCode int

const (
	E_UNSUPPORTED ErrorCode = 1 // backend-exclusive instruction under the wrong interpreter
	E_UNINIT      ErrorCode = 2 // reading a reference before any set
	E_ASSERT      ErrorCode = 3 // assertion with a false condition
	E_PARSE       ErrorCode = 4 // token could not be parsed as the requested kind
	E_RANGE       ErrorCode = 5 // backend-defined out-of-range array access
)

// String returns the string name for an error code
func (e ErrorCode) String() string {
	switch e {
	case E_UNSUPPORTED:
		return "E_UNSUPPORTED"
	case E_UNINIT:
		return "E_UNINIT"
	case E_ASSERT:
		return "E_ASSERT"
	case E_PARSE:
		return "E_PARSE"
	case E_RANGE:
		return "E_RANGE"
	default:
		return "E_UNKNOWN"
	}
}

// Message returns a human-readable message for an error code
func (e ErrorCode) Message() string {
	switch e {
	case E_UNSUPPORTED:
		return "Unsupported operation"
	case E_UNINIT:
		return "Uninitialized read"
	case E_ASSERT:
		return "Assertion failure"
	case E_PARSE:
		return "Parse failure"
	case E_RANGE:
		return "Index out of range"
	default:
		return "Unknown error"
	}
}

// RunError is the error value every interpreter surfaces.
// Detail carries the descriptive payload: the rejected operation
// name, the user-supplied assertion message, or the raw captured
// text of a failed parse.
type RunError struct {
	Code   ErrorCode
	Detail string
}

// Error implements the error interface
func (e *RunError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Code.Message())
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Code.Message(), e.Detail)
}

// Unsupported creates the error for a backend-exclusive instruction
// executed under the wrong interpreter
func Unsupported(op string) *RunError {
	return &RunError{Code: E_UNSUPPORTED, Detail: op}
}

// UninitRead creates the error for reading a never-set reference
func UninitRead(what string) *RunError {
	return &RunError{Code: E_UNINIT, Detail: what}
}

// AssertFailed creates the error for a false assertion,
// carrying the user-supplied message
func AssertFailed(msg string) *RunError {
	return &RunError{Code: E_ASSERT, Detail: msg}
}

// ParseFailed creates the error for an unparseable token,
// carrying the raw captured text
func ParseFailed(raw string) *RunError {
	return &RunError{Code: E_PARSE, Detail: raw}
}

// RangeError creates the error for an out-of-range array access
func RangeError(what string) *RunError {
	return &RunError{Code: E_RANGE, Detail: what}
}
