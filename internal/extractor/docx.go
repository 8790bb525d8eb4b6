package extractor

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const docxBodyEntry = "word/document.xml"

// extractDocx validates the container first, then runs the paragraph
// extraction with the raw text-run pass as fallback.
func extractDocx(path string) (string, error) {
	if err := validateDocx(path); err != nil {
		return "", fmt.Errorf("%w: invalid docx: %v", ErrCorruptFile, err)
	}
	return docxStrategy(path)
}

var docxStrategy = withFallback(docxParagraphs, docxTextRuns)

// validateDocx checks that the file is a well-formed zip archive containing
// a readable word/document.xml entry.
func validateDocx(path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != docxBodyEntry {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("open %s: %w", docxBodyEntry, err)
		}
		_, err = rc.Read(make([]byte, 100))
		rc.Close()
		if err != nil && err != io.EOF {
			return fmt.Errorf("read %s: %w", docxBodyEntry, err)
		}
		return nil
	}
	return fmt.Errorf("%s not found in archive", docxBodyEntry)
}

// docxParagraphs reads body-level paragraphs in document order, keeps the
// non-blank ones, and joins them with newlines. Paragraphs inside tables are
// skipped, matching what a structural paragraph walk sees.
func docxParagraphs(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	rc, err := openEntry(&r.Reader, docxBodyEntry)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var paragraphs []string
	var current strings.Builder
	var inParagraph, inRun bool
	var tableDepth int

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", docxBodyEntry, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth == 0 {
					inParagraph = true
					current.Reset()
				}
			case "r":
				inRun = inParagraph
			case "tab":
				if inRun {
					current.WriteByte('\t')
				}
			case "br":
				if inRun {
					current.WriteByte('\n')
				}
			}

		case xml.CharData:
			if inRun {
				current.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "r":
				inRun = false
			case "p":
				if inParagraph {
					inParagraph = false
					if text := strings.TrimSpace(current.String()); text != "" {
						paragraphs = append(paragraphs, text)
					}
				}
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}

// docxTextRuns is the permissive pass: it collects every w:t text node in
// document order, wherever it sits (tables, text boxes), joined with single
// spaces. Used only as fallback when the paragraph walk comes up empty.
func docxTextRuns(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	rc, err := openEntry(&r.Reader, docxBodyEntry)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var runs []string
	var current strings.Builder
	var inText bool

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", docxBodyEntry, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "t" && inText {
				inText = false
				if text := current.String(); text != "" {
					runs = append(runs, text)
				}
			}
		}
	}

	return strings.Join(runs, " "), nil
}

func openEntry(zr *zip.Reader, name string) (io.ReadCloser, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", name, err)
			}
			return rc, nil
		}
	}
	return nil, errors.New(name + " not found in archive")
}
