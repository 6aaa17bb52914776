package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "basic trim",
			input: "  Platform Team  ",
			want:  "Platform Team",
		},
		{
			name:  "multiple spaces between words",
			input: "Platform    Team",
			want:  "Platform Team",
		},
		{
			name:  "tabs and newlines",
			input: "Platform\t\nTeam",
			want:  "Platform Team",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   \t\n  ",
			want:  "",
		},
		{
			name:  "preserve special characters",
			input: " Café & Spa™ ",
			want:  "Café & Spa™",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimAndNormalize(tt.input)
			if got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeSearchQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases",
			input: "Alice",
			want:  "alice",
		},
		{
			name:  "trims and lowercases",
			input: "  ALICE Smith ",
			want:  "alice smith",
		},
		{
			name:  "empty stays empty",
			input: "  ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSearchQuery(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeSearchQuery(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
