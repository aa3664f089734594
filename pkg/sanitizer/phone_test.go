package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already E.164", "+919876543210", "+919876543210"},
		{"national format", "9876543210", "+919876543210"},
		{"spaced national format", "98765 43210", "+919876543210"},
		{"with leading zero", "09876543210", "+919876543210"},
		{"garbage passes through for validation", "not-a-phone", "not-a-phone"},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
