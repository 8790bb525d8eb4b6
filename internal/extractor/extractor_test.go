package extractor_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/caseloom/caseloom-cli/internal/extractor"
)

func TestExtractMissingFile(t *testing.T) {
	_, err := extractor.Extract(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, extractor.ErrIOFailure) {
		t.Fatalf("expected ErrIOFailure, got %v", err)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	p := filepath.Join(t.TempDir(), "doc.rtf")
	if err := os.WriteFile(p, []byte("{\\rtf1 hello}"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := extractor.Extract(p)
	if !errors.Is(err, extractor.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractUpperCaseExtension(t *testing.T) {
	p := filepath.Join(t.TempDir(), "NOTE.TXT")
	if err := os.WriteFile(p, []byte("shouting"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := extractor.Extract(p)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if out != "shouting" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestExtractTxtUTF8(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(p, []byte("  héllo wörld\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := extractor.Extract(p)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if out != "héllo wörld" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestExtractTxtLatin1(t *testing.T) {
	p := filepath.Join(t.TempDir(), "latin.txt")
	// "café" with é encoded as the single Latin-1 byte 0xE9, invalid UTF-8.
	if err := os.WriteFile(p, []byte{'c', 'a', 'f', 0xE9}, 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := extractor.Extract(p)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if out != "café" {
		t.Fatalf("expected Latin-1 fallback decode, got %q", out)
	}
}

func TestExtractDeterministic(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(p, []byte("same twice"), 0o644); err != nil {
		t.Fatal(err)
	}
	first, err := extractor.Extract(p)
	if err != nil {
		t.Fatalf("first extract: %v", err)
	}
	second, err := extractor.Extract(p)
	if err != nil {
		t.Fatalf("second extract: %v", err)
	}
	if first != second {
		t.Fatalf("extraction not deterministic: %q vs %q", first, second)
	}
}

func TestExtractCorruptPDF(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.pdf")
	if err := os.WriteFile(p, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := extractor.Extract(p)
	if !errors.Is(err, extractor.ErrCorruptFile) {
		t.Fatalf("expected ErrCorruptFile, got %v", err)
	}
}
