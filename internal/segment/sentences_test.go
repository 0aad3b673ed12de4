package segment

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			"empty",
			"",
			nil,
		},
		{
			"three sentences",
			"Hello there. How are you today? I am fine.",
			[]string{"Hello there.", "How are you today?", "I am fine."},
		},
		{
			"newline boundary",
			"first line\nsecond line",
			[]string{"first line", "second line"},
		},
		{
			"delimiter run kept",
			"Really?! I had no idea...",
			[]string{"Really?!", "I had no idea..."},
		},
		{
			"fullwidth terminators",
			"こんにちは世界。お元気ですか？",
			[]string{"こんにちは世界。", "お元気ですか？"},
		},
		{
			"no trailing terminator",
			"An unfinished thought",
			[]string{"An unfinished thought"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSentences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitSentencesMergesShortFragments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			"fragment without terminator gains one",
			"This is a long sentence. Ok",
			[]string{"This is a long sentence.Ok."},
		},
		{
			"fragment with terminator kept as-is",
			"This is a long sentence. No!",
			[]string{"This is a long sentence.No!"},
		},
		{
			"short leading sentence survives",
			"Hi. This is a test.",
			[]string{"Hi.", "This is a test."},
		},
		{
			"only a short fragment",
			"Yes.",
			[]string{"Yes."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSentences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
