// Package validator implements the §4.5 rule catalog: a pure function
// over the IR that accumulates Issues, never raising for document
// content problems.
package validator

import (
	"fmt"

	"github.com/kestrelapi/oas32/internal/issue"
	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/oaslog"
	"github.com/kestrelapi/oas32/registry"
)

// Issue is re-exported for callers that only import the validator package.
type Issue = issue.Issue

// Result summarizes a validation run, layered on top of the raw []Issue
// that spec.md's validate() returns, the way the teacher's callers rely
// on a ValidationResult wrapper.
type Result struct {
	Valid        bool
	Issues       []Issue
	Errors       []Issue
	Warnings     []Issue
	ErrorCount   int
	WarningCount int
}

// Validator holds validation configuration.
type Validator struct {
	IncludeWarnings bool
	StrictMode      bool
	Logger          oaslog.Logger
	Registry        *registry.Registry
	SelfURI         string
	BaseURI         string
}

// New builds a Validator from functional options.
func New(opts ...Option) (*Validator, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Validator{
		IncludeWarnings: cfg.includeWarnings,
		StrictMode:      cfg.strictMode,
		Logger:          cfg.logger,
		Registry:        cfg.registry,
		SelfURI:         cfg.selfURI,
		BaseURI:         cfg.baseURI,
	}, nil
}

// Validate runs the full rule catalog against def and returns every issue
// found, in a deterministic order: IR traversal order, with checks over a
// set of names (templated-path collisions, duplicate operationIds,
// path-parameter/template agreement) reported in sorted-name order.
// It never returns an error for document content: malformed
// document content is itself reported as an Issue.
func Validate(def *ir.Definition, opts ...Option) ([]Issue, error) {
	v, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return v.Validate(def), nil
}

// Validate runs the rule catalog against def using v's configuration.
func (v *Validator) Validate(def *ir.Definition) []Issue {
	c := &validateCtx{v: v, def: def, issues: make([]Issue, 0, 16)}
	c.validateRoot()
	if v.Logger != nil {
		v.Logger.Debug("validation complete", "issues", len(c.issues))
	}
	return c.issues
}

// ValidateResult runs the rule catalog and wraps the outcome in a Result.
func (v *Validator) ValidateResult(def *ir.Definition) *Result {
	issues := v.Validate(def)
	res := &Result{Issues: issues}
	for _, is := range issues {
		if is.IsError() {
			res.Errors = append(res.Errors, is)
		} else {
			res.Warnings = append(res.Warnings, is)
		}
	}
	res.ErrorCount = len(res.Errors)
	res.WarningCount = len(res.Warnings)
	res.Valid = res.ErrorCount == 0
	if !v.IncludeWarnings {
		res.Warnings = nil
		res.WarningCount = 0
	}
	return res
}

// validateCtx carries the accumulator plus cross-section lookups (known
// operation IDs, component pool membership) built once and consulted by
// every section's rules.
type validateCtx struct {
	v      *Validator
	def    *ir.Definition
	issues []Issue

	// opIDCache memoizes every operationId reachable from paths, webhooks,
	// components.pathItems, and callback path items, built lazily since
	// Link validation is the only section that needs it.
	opIDCache      map[string]bool
	opIDCacheBuilt bool
}

func (c *validateCtx) addError(path, format string, args ...any) {
	c.issues = append(c.issues, issue.Errorf(path, format, args...))
}

func (c *validateCtx) addWarning(path, format string, args ...any) {
	if !c.v.IncludeWarnings {
		return
	}
	c.issues = append(c.issues, issue.Warnf(path, format, args...))
}

// addStrict reports an Error when StrictMode is enabled and a Warning
// otherwise, for rules documented as SHOULD rather than MUST. No rule in
// the catalog calls it.
func (c *validateCtx) addStrict(path, format string, args ...any) {
	if c.v.StrictMode {
		c.addError(path, format, args...)
		return
	}
	c.addWarning(path, format, args...)
}

func joinPath(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out == "" {
			out = p
			continue
		}
		out = fmt.Sprintf("%s.%s", out, p)
	}
	return out
}
