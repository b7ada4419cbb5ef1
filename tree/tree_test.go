package tree

import (
	"testing"
)

func TestSniff(t *testing.T) {
	if Sniff([]byte("  {\"a\":1}")) != FormatJSON {
		t.Error("expected JSON for leading {")
	}
	if Sniff([]byte("a: 1")) != FormatYAML {
		t.Error("expected YAML for bare scalar doc")
	}
	if Sniff([]byte("- 1\n- 2")) != FormatYAML {
		t.Error("expected YAML for leading -")
	}
	if Sniff([]byte("[1,2]")) != FormatJSON {
		t.Error("expected JSON for leading [")
	}
}

func TestDecodeJSONOrderPreserved(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"z":1,"a":2,"m":3}`))
	if err != nil {
		t.Fatal(err)
	}
	m, ok := v.AsMap()
	if !ok {
		t.Fatal("expected map")
	}
	want := []string{"z", "a", "m"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDecodeJSONNumberKinds(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"i":1,"f":1.5}`))
	if err != nil {
		t.Fatal(err)
	}
	m, _ := v.AsMap()
	iv, _ := m.Get("i")
	if iv.Kind != KindInt || iv.Int != 1 {
		t.Errorf("expected int 1, got %+v", iv)
	}
	fv, _ := m.Get("f")
	if fv.Kind != KindFloat || fv.Float != 1.5 {
		t.Errorf("expected float 1.5, got %+v", fv)
	}
}

func TestDecodeYAMLOrderAndTypes(t *testing.T) {
	v, err := DecodeYAML([]byte("z: 1\na: true\nm: 1.5\ns: hello\n"))
	if err != nil {
		t.Fatal(err)
	}
	m, ok := v.AsMap()
	if !ok {
		t.Fatal("expected map")
	}
	want := []string{"z", "a", "m", "s"}
	got := m.Keys()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	zv, _ := m.Get("z")
	if zv.Kind != KindInt {
		t.Errorf("expected int for z, got kind %v", zv.Kind)
	}
	av, _ := m.Get("a")
	if av.Kind != KindBool || !av.Bool {
		t.Errorf("expected bool true for a, got %+v", av)
	}
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	orig := `{"b":1,"a":[1,2,"x"],"c":null,"d":true}`
	v, err := DecodeJSON([]byte(orig))
	if err != nil {
		t.Fatal(err)
	}
	out, err := EncodeJSON(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != orig {
		t.Errorf("EncodeJSON = %s, want %s", out, orig)
	}
}

func TestOrderedMapDeleteKeepsOrder(t *testing.T) {
	m := NewOrderedMap()
	m.Set("a", Int(1))
	m.Set("b", Int(2))
	m.Set("c", Int(3))
	m.Delete("b")
	want := []string{"a", "c"}
	got := m.Keys()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v want %v", got, want)
	}
}
