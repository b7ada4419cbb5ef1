// Package httoken provides HTTP token, status-code, and media-type syntax
// validation shared by the parser and validator.
package httoken

import (
	"mime"
	"strconv"
	"strings"
)

// tchar is the set of characters RFC 7230 §3.2.6 allows in a token, beyond
// alphanumerics.
const tchar = "!#$%&'*+-.^_`|~"

// IsValidToken reports whether s is a valid RFC 7230 HTTP token: one or
// more tchar/alphanumeric characters, case-sensitive, no whitespace.
func IsValidToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune(tchar, r):
		default:
			return false
		}
	}
	return true
}

// KnownPathItemMethods lists the fixed per-method operation slots a
// PathItem admits (OAS 3.2 adds QUERY to the 3.0/3.1 set).
var KnownPathItemMethods = map[string]bool{
	"get": true, "put": true, "post": true, "delete": true,
	"options": true, "head": true, "patch": true, "trace": true,
	"query": true,
}

// StatusCodeRange validates a Response status key: "default", "1XX".."5XX",
// or a three-digit code in [100, 599].
func StatusCodeRange(code string) bool {
	if code == "default" {
		return true
	}
	if len(code) != 3 {
		return false
	}
	if code[1] == 'X' && code[2] == 'X' {
		return code[0] >= '1' && code[0] <= '5'
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return false
	}
	return n >= 100 && n <= 599
}

// IsExtensionKey reports whether key is a specification-extension key
// ("x-" prefixed), which is never interpreted as a data member.
func IsExtensionKey(key string) bool {
	return strings.HasPrefix(key, "x-")
}

// ParseMediaType splits a media-type key ("type/subtype;params") into its
// essence ("type/subtype") and whether it parsed successfully. Parameters
// are discarded; callers that need them should call mime.ParseMediaType
// directly.
func ParseMediaType(raw string) (essence string, ok bool) {
	essence, _, err := mime.ParseMediaType(raw)
	if err != nil {
		// mime.ParseMediaType is strict about parameter syntax; fall back to
		// a bare split on ';' so a media type key with no parameters but an
		// unusual structure still yields an essence for ranking purposes.
		essence = strings.TrimSpace(strings.SplitN(raw, ";", 2)[0])
		if !strings.Contains(essence, "/") {
			return "", false
		}
		return essence, true
	}
	if !strings.Contains(essence, "/") {
		return "", false
	}
	return essence, true
}

// IsLineDelimitedEssence reports whether a media type essence denotes a
// sequential/line-delimited payload (§4.2 response type inference).
func IsLineDelimitedEssence(essence string) bool {
	switch essence {
	case "application/jsonl", "application/x-ndjson", "application/json-seq", "text/event-stream":
		return true
	default:
		return false
	}
}
