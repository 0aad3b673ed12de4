package subtitle

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

type VTTFile struct {
	entries []Entry
}

var (
	vttTimestampLine = regexp.MustCompile(
		`(\d{2}:\d{2}:\d{2}\.\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2}\.\d{3})`,
	)
	// cue timestamps without an hour component
	vttShortTimestampLine = regexp.MustCompile(
		`(\d{2}:\d{2}\.\d{3})\s*-->\s*(\d{2}:\d{2}\.\d{3})`,
	)
)

func parseVTTFile(path string) (*VTTFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open VTT file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var entries []Entry
	scanner := bufio.NewScanner(file)

	var current *Entry
	var textLines []string
	lineNum := 0
	headerParsed := false
	entryIndex := 0

	flush := func() {
		if current != nil && len(textLines) > 0 {
			current.Text = strings.Join(textLines, "\n")
			entries = append(entries, *current)
		}
		current = nil
		textLines = nil
	}

	startCue := func(startRaw, endRaw string) error {
		flush()
		start, err := ParseTimestamp(startRaw)
		if err != nil {
			return fmt.Errorf("invalid start timestamp at line %d: %w", lineNum, err)
		}
		end, err := ParseTimestamp(endRaw)
		if err != nil {
			return fmt.Errorf("invalid end timestamp at line %d: %w", lineNum, err)
		}
		entryIndex++
		current = &Entry{Index: entryIndex, Start: start, End: end}
		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		trimmed := strings.TrimSpace(line)

		if !headerParsed {
			if strings.HasPrefix(trimmed, "WEBVTT") {
				headerParsed = true
				continue
			}
		}

		// NOTE and STYLE blocks run until a blank line
		if strings.HasPrefix(trimmed, "NOTE") || strings.HasPrefix(trimmed, "STYLE") {
			for scanner.Scan() {
				lineNum++
				if strings.TrimSpace(scanner.Text()) == "" {
					break
				}
			}
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}

		if m := vttTimestampLine.FindStringSubmatch(line); len(m) == 3 {
			if err := startCue(m[1], m[2]); err != nil {
				return nil, err
			}
			continue
		}
		if m := vttShortTimestampLine.FindStringSubmatch(line); len(m) == 3 {
			if err := startCue("00:"+m[1], "00:"+m[2]); err != nil {
				return nil, err
			}
			continue
		}

		if current != nil {
			textLines = append(textLines, line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading VTT file: %w", err)
	}

	return &VTTFile{entries: entries}, nil
}

func (f *VTTFile) Format() Format {
	return FormatVTT
}

func (f *VTTFile) Subtitle() *Subtitle {
	return &Subtitle{Entries: f.entries}
}

func (f *VTTFile) Write(path string) error {
	writer, err := NewWriter(FormatVTT)
	if err != nil {
		return err
	}
	return writer.Write(f.Subtitle(), path)
}
