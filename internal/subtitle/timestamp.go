package subtitle

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// SRT uses a comma before the milliseconds, VTT a dot. Parsing tolerates
// either so a shifted document can be read back regardless of variant.
var timestampPattern = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})[,.](\d{3})$`)

func millisSeparator(format Format) byte {
	if format == FormatVTT {
		return '.'
	}
	return ','
}

// FormatTimestamp renders seconds as HH:MM:SS,mmm (SRT) or HH:MM:SS.mmm
// (VTT). Negative values are clamped to zero.
func FormatTimestamp(secs float64, format Format) string {
	if secs < 0 {
		secs = 0
	}

	whole := int(secs)
	ms := int(math.Round((secs - math.Floor(secs)) * 1000))
	if ms == 1000 {
		ms = 0
		whole++
	}

	h := whole / 3600
	m := (whole % 3600) / 60
	s := whole % 60
	return fmt.Sprintf("%02d:%02d:%02d%c%03d", h, m, s, millisSeparator(format), ms)
}

// ParseTimestamp is the inverse of FormatTimestamp.
func ParseTimestamp(ts string) (float64, error) {
	m := timestampPattern.FindStringSubmatch(strings.TrimSpace(ts))
	if m == nil {
		return 0, fmt.Errorf("malformed timestamp %q", strings.TrimSpace(ts))
	}

	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	s, _ := strconv.Atoi(m[3])
	ms, _ := strconv.Atoi(m[4])

	return float64(h)*3600 + float64(mins)*60 + float64(s) + float64(ms)/1000, nil
}
