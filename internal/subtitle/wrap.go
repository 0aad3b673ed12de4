package subtitle

import (
	"strings"
	"unicode/utf8"
)

// wrapText breaks text into display lines of at most width runes, splitting
// at existing spaces and hard-splitting words longer than the width. No
// characters are dropped. An empty input yields no lines.
func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	cur := ""

	for _, word := range strings.Split(text, " ") {
		for utf8.RuneCountInString(word) > width {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
		}
		if word == "" {
			continue
		}
		switch {
		case cur == "":
			cur = word
		case utf8.RuneCountInString(cur)+1+utf8.RuneCountInString(word) <= width:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}

	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// displayLines wraps a cue's text for rendering; a cue whose wrap produces
// nothing falls back to the raw text as a single line.
func displayLines(text string, width int) []string {
	lines := wrapText(text, width)
	if len(lines) == 0 {
		return []string{text}
	}
	return lines
}
