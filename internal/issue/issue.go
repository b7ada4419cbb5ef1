// Package issue provides the Issue type shared by every validator rule.
package issue

import (
	"fmt"

	"github.com/kestrelapi/oas32/internal/severity"
)

// Issue represents a single problem surfaced by the validator.
type Issue struct {
	// Severity is Error or Warning.
	Severity severity.Severity
	// Path is the JSON-pointer-like path to the offending field, e.g.
	// "paths./pets.get.responses.200".
	Path string
	// Message is a human-readable description of the problem.
	Message string
}

// New builds an Issue at the given severity.
func New(sev severity.Severity, path, message string) Issue {
	return Issue{Severity: sev, Path: path, Message: message}
}

// Errorf builds an Error-severity Issue with a formatted message.
func Errorf(path, format string, args ...any) Issue {
	return Issue{Severity: severity.SeverityError, Path: path, Message: fmt.Sprintf(format, args...)}
}

// Warnf builds a Warning-severity Issue with a formatted message.
func Warnf(path, format string, args ...any) Issue {
	return Issue{Severity: severity.SeverityWarning, Path: path, Message: fmt.Sprintf(format, args...)}
}

// String renders the issue in "[severity] path: message" form.
func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Path, i.Message)
}

// IsError reports whether this issue has Error severity.
func (i Issue) IsError() bool {
	return i.Severity == severity.SeverityError
}
