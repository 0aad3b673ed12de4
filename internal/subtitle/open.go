package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Open parses an existing subtitle file, dispatching on its extension.
func Open(path string) (File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return parseSRTFile(path)
	case ".vtt":
		return parseVTTFile(path)
	default:
		return nil, fmt.Errorf("unsupported subtitle format: %s", ext)
	}
}
