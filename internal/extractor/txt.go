package extractor

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// extractTxt decodes a plain-text file as UTF-8, retrying as Latin-1 when
// the bytes are not valid UTF-8. No other encodings are attempted.
func extractTxt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	if utf8.Valid(data) {
		return strings.TrimSpace(string(data)), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: undecodable text file: %v", ErrCorruptFile, err)
	}
	return strings.TrimSpace(string(decoded)), nil
}
