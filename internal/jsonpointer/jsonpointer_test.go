package jsonpointer

import (
	"reflect"
	"testing"
)

func TestSplitAndJoin(t *testing.T) {
	tokens := Split("/components/responses/Ok")
	want := []string{"components", "responses", "Ok"}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("Split = %v, want %v", tokens, want)
	}
	if got := Join(tokens); got != "/components/responses/Ok" {
		t.Errorf("Join = %q", got)
	}
}

func TestUnescape(t *testing.T) {
	if got := Unescape("a~1b~0c"); got != "a/b~c" {
		t.Errorf("Unescape = %q", got)
	}
}

func TestValidSyntax(t *testing.T) {
	cases := map[string]bool{
		"":               true,
		"/":              true,
		"/a/b":           true,
		"/a~0b/c~1d":     true,
		"/a~2b":          false,
		"no/leading/slash": false,
		"/has#hash":      false,
	}
	for in, want := range cases {
		if got := ValidSyntax(in); got != want {
			t.Errorf("ValidSyntax(%q) = %v, want %v", in, got, want)
		}
	}
}
