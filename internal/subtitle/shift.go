package subtitle

import (
	"fmt"
	"strings"
)

// ShiftDocument moves every timestamp line in a rendered document by offset
// seconds, leaving all other lines untouched. The format selects the
// millisecond separator for re-rendering; parsing tolerates either. Any line
// containing the arrow delimiter must carry two well-formed timestamps, a
// malformed one aborts the whole shift.
func ShiftDocument(doc string, offset float64, format Format) (string, error) {
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "-->") {
			continue
		}

		parts := strings.SplitN(line, "-->", 2)
		start, err := ParseTimestamp(parts[0])
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		end, err := ParseTimestamp(parts[1])
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}

		lines[i] = fmt.Sprintf("%s --> %s",
			FormatTimestamp(start+offset, format),
			FormatTimestamp(end+offset, format))
	}
	return strings.Join(lines, "\n"), nil
}
