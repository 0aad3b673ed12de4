package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SubRip format
type SRTWriter struct {
	WrapWidth int
}

// WebVTT format
type VTTWriter struct {
	WrapWidth int
}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{WrapWidth: DefaultOptions().WrapWidth}, nil
	case FormatVTT:
		return &VTTWriter{WrapWidth: DefaultOptions().WrapWidth}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Render produces the SRT document: numbered blocks separated by blank
// lines, a single trailing newline. An empty track renders as "\n".
func (w *SRTWriter) Render(sub *Subtitle) string {
	blocks := make([]string, 0, len(sub.Entries))
	for i, entry := range sub.Entries {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatTimestamp(entry.Start, FormatSRT),
			FormatTimestamp(entry.End, FormatSRT)))
		sb.WriteString(strings.Join(displayLines(entry.Text, w.WrapWidth), "\n"))
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func (w *SRTWriter) Write(sub *Subtitle, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(w.Render(sub)), 0644)
}

// Render produces the VTT document: the WEBVTT header, then unnumbered cue
// blocks with dot millisecond separators. An empty track renders as the
// header alone ("WEBVTT\n\n").
func (w *VTTWriter) Render(sub *Subtitle) string {
	if len(sub.Entries) == 0 {
		return "WEBVTT\n\n"
	}

	blocks := make([]string, 0, len(sub.Entries))
	for _, entry := range sub.Entries {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatTimestamp(entry.Start, FormatVTT),
			FormatTimestamp(entry.End, FormatVTT)))
		sb.WriteString(strings.Join(displayLines(entry.Text, w.WrapWidth), "\n"))
		blocks = append(blocks, sb.String())
	}
	return "WEBVTT\n\n" + strings.Join(blocks, "\n\n") + "\n"
}

func (w *VTTWriter) Write(sub *Subtitle, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(w.Render(sub)), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
