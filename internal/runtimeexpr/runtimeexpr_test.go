package runtimeexpr

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"$url", true},
		{"$method", true},
		{"$statusCode", true},
		{"$request.query.id", false}, // missing dot-separated form isn't supported; query must follow with no extra dot in source
		{"$request.query", true},
		{"$request.path", true},
		{"$request.header", true},
		{"$request.body", true},
		{"$request.body#/id", true},
		{"$response.header", true},
		{"$response.body#/items/0/name", true},
		{"$response.query", false}, // query not valid on response
		{"$bogus", false},
		{"https://example.com", false},
		{"$request.body#bad", false},
	}
	for _, tt := range cases {
		_, ok := Parse(tt.in)
		if ok != tt.ok {
			t.Errorf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

func TestIsRuntimeExpression(t *testing.T) {
	if !IsRuntimeExpression("$response.body#/id") {
		t.Error("expected true")
	}
	if IsRuntimeExpression("plain-string") {
		t.Error("expected false for non-$ string")
	}
}
