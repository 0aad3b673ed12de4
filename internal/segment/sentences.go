package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Sentence terminators: ASCII and full-width variants plus ellipsis. A bare
// newline also ends a sentence but contributes no visible character.
var sentenceDelims = regexp.MustCompile(`[.。!?！？…]+|\n`)

const terminatorRunes = ".。!?！？…"

// minSentenceRunes is the threshold below which a sentence is considered a
// fragment and folded into its predecessor.
const minSentenceRunes = 6

// SplitSentences breaks normalized text into sentence-like units. The
// terminating punctuation stays attached to its sentence. Trailing fragments
// shorter than minSentenceRunes are merged into the previous sentence; a
// short leading fragment has no predecessor and is kept as-is.
func SplitSentences(text string) []string {
	var sentences []string
	var cur strings.Builder

	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			sentences = append(sentences, s)
		}
		cur.Reset()
	}

	last := 0
	for _, loc := range sentenceDelims.FindAllStringIndex(text, -1) {
		cur.WriteString(text[last:loc[0]])
		cur.WriteString(strings.ReplaceAll(text[loc[0]:loc[1]], "\n", ""))
		flush()
		last = loc[1]
	}
	cur.WriteString(text[last:])
	flush()

	return mergeShortFragments(sentences)
}

// mergeShortFragments folds sub-threshold sentences into their predecessor,
// adding a terminator when the fragment had none. Implemented as a fold into
// a fresh slice rather than in-place deletion.
func mergeShortFragments(sentences []string) []string {
	merged := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if len(merged) == 0 || utf8.RuneCountInString(s) >= minSentenceRunes {
			merged = append(merged, s)
			continue
		}
		if !endsWithTerminator(s) {
			s += "."
		}
		merged[len(merged)-1] += s
	}
	return merged
}

func endsWithTerminator(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 {
		return false
	}
	return strings.ContainsRune(terminatorRunes, r)
}
