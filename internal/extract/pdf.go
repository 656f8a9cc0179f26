package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/notesos/ingest/constants"
)

// extractPDF reads the embedded text layer of a PDF. Pages without a text
// layer contribute nothing; a scanned PDF should be uploaded as images
// instead.
func extractPDF(content []byte) (Result, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return Result{}, fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}

	return Result{
		Text:       normalizeWhitespace(sb.String()),
		Confidence: 1.0,
		Provider:   constants.ProviderDirect,
		Pages:      numPages,
	}, nil
}
