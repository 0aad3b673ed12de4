package segment

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf", "one\r\ntwo\rthree", "one\ntwo\nthree"},
		{"space runs", "a  b\t\tc \t d", "a b c d"},
		{"blank lines", "para one\n\n\npara two", "para one\npara two"},
		{"surrounding whitespace", "  \n hello \t\n", "hello"},
		{"mixed", "\r\n A  line.\r\n\r\nAnother\tline. \n", "A line.\nAnother line."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello there. How are you today?",
		"line one\nline two",
		"a b c",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
