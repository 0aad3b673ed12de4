package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSRTRender(t *testing.T) {
	sub := &Subtitle{Entries: []Entry{
		{Index: 1, Start: 0, End: 2.5, Text: "Hello there."},
		{Index: 2, Start: 2.5, End: 6, Text: "A somewhat longer line that wraps."},
	}}

	w := &SRTWriter{WrapWidth: 24}
	got := w.Render(sub)

	want := "1\n" +
		"00:00:00,000 --> 00:00:02,500\n" +
		"Hello there.\n" +
		"\n" +
		"2\n" +
		"00:00:02,500 --> 00:00:06,000\n" +
		"A somewhat longer line\n" +
		"that wraps.\n"
	if got != want {
		t.Errorf("SRT render mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestVTTRender(t *testing.T) {
	sub := &Subtitle{Entries: []Entry{
		{Index: 1, Start: 0, End: 2.5, Text: "Hello there."},
	}}

	w := &VTTWriter{WrapWidth: 24}
	got := w.Render(sub)

	want := "WEBVTT\n\n" +
		"00:00:00.000 --> 00:00:02.500\n" +
		"Hello there.\n"
	if got != want {
		t.Errorf("VTT render mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderEmptyTrack(t *testing.T) {
	empty := &Subtitle{}

	srt := (&SRTWriter{WrapWidth: 24}).Render(empty)
	if srt != "\n" {
		t.Errorf("empty SRT = %q, want %q", srt, "\n")
	}

	vtt := (&VTTWriter{WrapWidth: 24}).Render(empty)
	if vtt != "WEBVTT\n\n" {
		t.Errorf("empty VTT = %q, want %q", vtt, "WEBVTT\n\n")
	}
}

func TestWriterRoundTrip(t *testing.T) {
	sub := &Subtitle{Entries: []Entry{
		{Index: 1, Start: 0, End: 3, Text: "First cue text."},
		{Index: 2, Start: 3, End: 7.25, Text: "Second cue text."},
	}}

	tmpDir := t.TempDir()
	for _, format := range []Format{FormatSRT, FormatVTT} {
		writer, err := NewWriter(format)
		if err != nil {
			t.Fatalf("NewWriter(%s): %v", format, err)
		}
		path := filepath.Join(tmpDir, "out"+GetExtensionForFormat(format))
		if err := writer.Write(sub, path); err != nil {
			t.Fatalf("Write(%s): %v", format, err)
		}

		parsed, err := Open(path)
		if err != nil {
			t.Fatalf("Open(%s): %v", format, err)
		}
		got := parsed.Subtitle()
		if len(got.Entries) != 2 {
			t.Fatalf("%s: expected 2 entries, got %d", format, len(got.Entries))
		}
		if got.Entries[1].Text != "Second cue text." {
			t.Errorf("%s: entry 1 text = %q", format, got.Entries[1].Text)
		}
		if got.Entries[1].End != 7.25 {
			t.Errorf("%s: entry 1 end = %g, want 7.25", format, got.Entries[1].End)
		}
	}
}

func TestNewWriterRejectsUnknownFormat(t *testing.T) {
	if _, err := NewWriter(Format("ass")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestWriterCreatesOutputDir(t *testing.T) {
	sub := &Subtitle{Entries: []Entry{{Index: 1, Start: 0, End: 2, Text: "Cue."}}}
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.srt")

	w := &SRTWriter{WrapWidth: 24}
	if err := w.Write(sub, path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "short line", 24, []string{"short line"}},
		{"splits at spaces", "A somewhat longer line that wraps.", 24, []string{"A somewhat longer line", "that wraps."}},
		{"hard splits long words", strings.Repeat("x", 30), 24, []string{strings.Repeat("x", 24), strings.Repeat("x", 6)}},
		{"empty", "", 24, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.in, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapText(%q) = %q, want %q", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
