// Package oaserrors provides structured error types for the oas32 library.
//
// These types back the "hard failure" axis of the library's error design:
// malformed input, calling the wrong entry point for a document's root
// shape, and file-not-found. Everything else the library reports is a
// severity-tagged Issue (see internal/issue), never an error.
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")
	// ErrReference indicates a reference could not be resolved against
	// the supplied registry or base URI.
	ErrReference = errors.New("reference error")
	// ErrConfig indicates invalid option configuration was supplied to
	// a functional-option constructor (Parse/Validate/Write).
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse a document.
type ParseError struct {
	// Path is the file path or source identifier the error relates to.
	Path string
	// Message describes the parsing failure.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrParse
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReferenceError represents a failure encountered while resolving a $ref.
type ReferenceError struct {
	// Ref is the raw reference string that could not be resolved.
	Ref string
	// Message describes the failure.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("reference error for %q: %s", e.Ref, e.Message)
}

func (e *ReferenceError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrReference
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

// ConfigError represents invalid configuration passed to a functional-option
// constructor.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}
