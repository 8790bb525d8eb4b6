package extractor

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF concatenates the text of every page in order. A page that is
// null or fails to decode contributes nothing; only a document that cannot
// be opened at all fails the extraction.
func extractPDF(path string) (text string, err error) {
	// The reader panics on some malformed xref tables; fold that into the
	// normal corrupt-file path.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: cannot read PDF: %v", ErrCorruptFile, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: cannot read PDF: %v", ErrCorruptFile, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil || pageText == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(pageText)
	}
	return strings.TrimSpace(sb.String()), nil
}
