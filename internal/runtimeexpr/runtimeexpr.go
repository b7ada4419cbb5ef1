// Package runtimeexpr implements a small recursive-descent recognizer for
// the OpenAPI runtime-expression grammar used by Link.parameters,
// Callback keys, and the validator's §4.5 syntax checks:
//
//	expression = ( "$url" | "$method" | "$statusCode" | "$request." source | "$response." source )
//	source     = ( "query" | "path" | "header" | "body" ) [ "#" fragment ]   (request)
//	source     = ( "header" | "body" ) [ "#" fragment ]                       (response)
//	fragment   = a valid RFC 6901 JSON Pointer
package runtimeexpr

import (
	"strings"

	"github.com/kestrelapi/oas32/internal/jsonpointer"
)

// Kind identifies which grammar alternative an expression matched.
type Kind int

const (
	KindInvalid Kind = iota
	KindURL
	KindMethod
	KindStatusCode
	KindRequest
	KindResponse
)

// Expression is a parsed runtime expression.
type Expression struct {
	Kind Kind
	// Source is the request/response sub-source ("query", "path",
	// "header", "body"), set only for KindRequest/KindResponse.
	Source string
	// Fragment is the JSON Pointer fragment following "#", without the
	// leading "#". Empty if no fragment was present.
	Fragment string
}

var requestSources = map[string]bool{"query": true, "path": true, "header": true, "body": true}
var responseSources = map[string]bool{"header": true, "body": true}

// Parse recognizes s as a runtime expression. ok is false if s does not
// match the grammar at all.
func Parse(s string) (Expression, bool) {
	switch s {
	case "$url":
		return Expression{Kind: KindURL}, true
	case "$method":
		return Expression{Kind: KindMethod}, true
	case "$statusCode":
		return Expression{Kind: KindStatusCode}, true
	}

	for _, entry := range iterPrefixes() {
		if !strings.HasPrefix(s, entry.prefix) {
			continue
		}
		rest := s[len(entry.prefix):]
		source, fragment, hasFragment := cutFragment(rest)
		if !entry.sources[source] {
			return Expression{}, false
		}
		if hasFragment && !jsonpointer.ValidSyntax(fragment) {
			return Expression{}, false
		}
		return Expression{Kind: entry.kind, Source: source, Fragment: fragment}, true
	}
	return Expression{}, false
}

// IsRuntimeExpression reports whether s begins with "$" and matches the
// grammar. Non-"$"-prefixed strings (plain URLs) are never runtime
// expressions, matching the callback-key rule that a key may be a plain
// URL OR embed an expression inside "{...}".
func IsRuntimeExpression(s string) bool {
	if !strings.HasPrefix(s, "$") {
		return false
	}
	_, ok := Parse(s)
	return ok
}

func cutFragment(rest string) (source, fragment string, hasFragment bool) {
	idx := strings.Index(rest, "#")
	if idx < 0 {
		return rest, "", false
	}
	return rest[:idx], rest[idx+1:], true
}

type prefixEntry struct {
	prefix  string
	kind    Kind
	sources map[string]bool
}

func iterPrefixes() []prefixEntry {
	return []prefixEntry{
		{"$request.", KindRequest, requestSources},
		{"$response.", KindResponse, responseSources},
	}
}
