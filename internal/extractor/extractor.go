// Package extractor turns PDF, DOCX, and plain-text documents into plain text.
//
// Extraction is dispatched on the file extension only; no content sniffing is
// performed. Every format-specific failure is normalized to one of three
// sentinel errors before it leaves the package, so callers can branch with
// errors.Is without knowing which library failed underneath.
package extractor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat means the file extension is not one of .pdf, .docx, .txt.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrCorruptFile means the format was recognized but the content is unreadable.
	ErrCorruptFile = errors.New("corrupt or unreadable file")
	// ErrIOFailure means the file is missing or unreadable at the filesystem level.
	ErrIOFailure = errors.New("file not accessible")
)

// strategy is a format-specific extraction procedure.
type strategy func(path string) (string, error)

// Extract reads the document at path and returns its text content, trimmed.
// An empty string is a valid result for a readable but text-free document.
func Extract(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDocx(path)
	case ".txt":
		return extractTxt(path)
	default:
		return "", fmt.Errorf("%w: %q (accepted: .pdf, .docx, .txt)", ErrUnsupportedFormat, ext)
	}
}

// withFallback composes two strategies: when primary fails or yields only
// whitespace, secondary runs exactly once and its text is used if non-empty.
// A failing secondary never masks the primary outcome: the primary error (or
// its empty result) propagates with the original detail.
func withFallback(primary, secondary strategy) strategy {
	return func(path string) (string, error) {
		text, err := primary(path)
		if err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text), nil
		}
		if alt, altErr := secondary(path); altErr == nil {
			if alt = strings.TrimSpace(alt); alt != "" {
				return alt, nil
			}
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCorruptFile, err)
		}
		return strings.TrimSpace(text), nil
	}
}
