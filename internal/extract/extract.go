package extract

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Text returns the transcript content of a file. Word documents (.docx) have
// their paragraph text extracted and joined with newlines; when that fails
// for any reason the file is read as plain UTF-8 text instead. Every other
// extension is read raw.
func Text(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		if txt, err := docxText(path); err == nil {
			return txt, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}
	return string(data), nil
}

// docxText pulls the visible paragraph text out of a .docx archive. A .docx
// is a zip with the document body at word/document.xml; text runs live in
// <w:t> elements and paragraphs end at </w:p>.
func docxText(path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open docx archive: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	for _, f := range reader.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open document body: %w", err)
		}
		defer func() {
			_ = rc.Close()
		}()
		return documentText(rc)
	}

	return "", errors.New("docx archive has no word/document.xml")
}

func documentText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inRun := false

	flush := func() {
		if p := strings.TrimSpace(current.String()); p != "" {
			paragraphs = append(paragraphs, p)
		}
		current.Reset()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document body: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inRun = true
			case "tab":
				current.WriteByte(' ')
			case "br":
				flush()
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				flush()
			}
		case xml.CharData:
			if inRun {
				current.Write(t)
			}
		}
	}
	flush()

	if len(paragraphs) == 0 {
		return "", errors.New("docx document contains no text")
	}
	return strings.Join(paragraphs, "\n"), nil
}
