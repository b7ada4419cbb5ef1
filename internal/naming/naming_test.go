package naming

import "testing"

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"UserProfile": "user_profile",
		"api-client":  "api_client",
		"already_ok":  "already_ok",
	}
	for in, want := range cases {
		if got := ToSnakeCase(in); got != want {
			t.Errorf("ToSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSynthesizeOperationID(t *testing.T) {
	cases := []struct{ method, path, want string }{
		{"GET", "/pets", "get_pets"},
		{"GET", "/pets/{petId}", "get_pets_pet_id"},
		{"QUERY", "/search", "query_search"},
		{"GET", "/", "get_root"},
	}
	for _, tt := range cases {
		if got := SynthesizeOperationID(tt.method, tt.path); got != tt.want {
			t.Errorf("SynthesizeOperationID(%q,%q) = %q, want %q", tt.method, tt.path, got, tt.want)
		}
	}
}
