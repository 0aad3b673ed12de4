package subtitle

import (
	"path/filepath"
	"strings"
)

// Entry represents a single subtitle cue. Times are seconds from the start
// of the track.
type Entry struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// Duration returns the on-screen time of the cue.
func (e Entry) Duration() float64 {
	return e.End - e.Start
}

// Subtitle represents a complete subtitle track.
type Subtitle struct {
	Entries []Entry
}

// Span returns the start of the first cue and the end of the last one.
func (s *Subtitle) Span() (start, end float64) {
	if len(s.Entries) == 0 {
		return 0, 0
	}
	return s.Entries[0].Start, s.Entries[len(s.Entries)-1].End
}

// Format identifies a supported subtitle output format.
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// Writer renders a subtitle track as a document and writes it to disk.
type Writer interface {
	Render(sub *Subtitle) string
	Write(sub *Subtitle, path string) error
}

// File is a parsed subtitle file.
type File interface {
	Format() Format
	Subtitle() *Subtitle
	Write(path string) error
}

// GetFormatFromExtension maps a file path to its subtitle format.
func GetFormatFromExtension(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".vtt":
		return FormatVTT
	default:
		return FormatSRT
	}
}

// GetExtensionForFormat returns the canonical file extension for a format.
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatVTT:
		return ".vtt"
	default:
		return ".srt"
	}
}
