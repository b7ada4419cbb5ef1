package severity

import "testing"

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name string
		sev  Severity
		want string
	}{
		{"error", SeverityError, "error"},
		{"warning", SeverityWarning, "warning"},
		{"unknown negative", Severity(-1), "unknown"},
		{"unknown large", Severity(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sev.String(); got != tt.want {
				t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.want)
			}
		})
	}
}
