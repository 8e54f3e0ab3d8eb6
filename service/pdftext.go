package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoUsableText is returned when a PDF parses but yields no text on any
// page, typically a scanned document with no text layer.
var ErrNoUsableText = errors.New("no usable text in document")

// PDFMagic is the required file prefix for uploads.
const PDFMagic = "%PDF"

// IsPDF reports whether the data starts with the PDF magic bytes.
func IsPDF(data []byte) bool {
	return len(data) >= len(PDFMagic) && string(data[:len(PDFMagic)]) == PDFMagic
}

// ExtractText parses a PDF and returns the raw text of each page. Pages
// whose text extraction fails are kept as empty strings so page numbering
// stays stable; the whole call fails only when the document itself cannot
// be parsed or no page has any text.
func ExtractText(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if !IsPDF(data) {
		return nil, errors.New("not a PDF document")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	hasText := false
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		if strings.TrimSpace(text) != "" {
			hasText = true
		}
		pages = append(pages, text)
	}

	if !hasText {
		return nil, ErrNoUsableText
	}
	return pages, nil
}
