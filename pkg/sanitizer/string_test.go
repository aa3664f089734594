package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", "   \t\n  ", ""},
		{"surrounding whitespace", "  Ravi Kumar  ", "Ravi Kumar"},
		{"internal runs collapsed", "Ravi   \t Kumar", "Ravi Kumar"},
		{"already normalized", "Ravi Kumar", "Ravi Kumar"},
		{"single word", " Ravi ", "Ravi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{" Ravi@Example.COM ", "ravi@example.com"},
		{"ravi@example.com", "ravi@example.com"},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.input); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
