package typeinfer

import "testing"

func TestRank(t *testing.T) {
	cases := []struct {
		essence string
		want    int
	}{
		{"application/json", 0},
		{"application/*+json", 1},
		{"application/*", 2},
		{"*/*", 3},
		{"malformed", 3},
	}
	for _, c := range cases {
		if got := Rank(c.essence); got != c.want {
			t.Errorf("Rank(%q) = %d, want %d", c.essence, got, c.want)
		}
	}
}

func TestPrimitive(t *testing.T) {
	cases := []struct {
		jsonType, format, want string
	}{
		{"integer", "", "Int"},
		{"number", "", "Float"},
		{"boolean", "", "Bool"},
		{"string", "", "String"},
		{"string", "byte", "ByteArray"},
		{"string", "binary", "ByteArray"},
		{"object", "", ""},
	}
	for _, c := range cases {
		if got := Primitive(c.jsonType, c.format); got != c.want {
			t.Errorf("Primitive(%q, %q) = %q, want %q", c.jsonType, c.format, got, c.want)
		}
	}
}

func TestList(t *testing.T) {
	if got := List("String"); got != "List<String>" {
		t.Errorf("List(%q) = %q", "String", got)
	}
	if got := List(""); got != "List<Object>" {
		t.Errorf("List(\"\") = %q, want List<Object>", got)
	}
}

func TestSchemaRefName(t *testing.T) {
	cases := []struct {
		ref, want string
	}{
		{"#/components/schemas/Pet", "Pet"},
		{"other.json#/components/schemas/Pet", "Pet"},
		{"#/components/schemas/", ""},
		{"no-slash", ""},
	}
	for _, c := range cases {
		if got := SchemaRefName(c.ref); got != c.want {
			t.Errorf("SchemaRefName(%q) = %q, want %q", c.ref, got, c.want)
		}
	}
}
