package views

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text passes through", "src/main.cpp", "src/main.cpp"},
		{"tabs become spaces", "a\tb", "a b"},
		{"escape sequence stripped", "\x1b[31mred\x1b[0m", "[31mred[0m"},
		{"delete stripped", "a\x7fb", "ab"},
		{"bare csi stripped", "ab", "ab"},
		{"newlines stripped", "one\ntwo", "onetwo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeBlockKeepsNewlines(t *testing.T) {
	got := SanitizeBlock("int x;\n\x1bint y;")
	if got != "int x;\nint y;" {
		t.Errorf("got %q", got)
	}
}
