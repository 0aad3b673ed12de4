package segment

import "unicode/utf8"

// GroupChunks packs sentences into display-sized chunks. Packing is greedy
// and order-preserving: a sentence joins the current chunk when the combined
// length (plus one joining space) stays within maxChars. A single sentence
// longer than maxChars is sliced into consecutive targetChars-rune pieces,
// the last of which may be shorter.
func GroupChunks(sentences []string, targetChars, maxChars int) []string {
	if targetChars < 1 {
		targetChars = 1
	}
	if maxChars < 1 {
		maxChars = 1
	}

	var chunks []string
	current := ""

	for _, s := range sentences {
		joined := utf8.RuneCountInString(current) + utf8.RuneCountInString(s)
		if current != "" {
			joined++ // joining space
		}
		if joined <= maxChars {
			if current == "" {
				current = s
			} else {
				current += " " + s
			}
			continue
		}

		if current != "" {
			chunks = append(chunks, current)
			current = ""
		}

		if utf8.RuneCountInString(s) > maxChars {
			chunks = append(chunks, sliceSentence(s, targetChars)...)
		} else {
			current = s
		}
	}

	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}

func sliceSentence(s string, width int) []string {
	runes := []rune(s)
	pieces := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		pieces = append(pieces, string(runes[start:end]))
	}
	return pieces
}
