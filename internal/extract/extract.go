package extract

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MimePDF is the only mime type accepted for company profile uploads.
const MimePDF = "application/pdf"

// ErrNotPDF is returned when a payload is not a readable PDF document.
var ErrNotPDF = errors.New("not a valid PDF document")

// IsPDF reports whether the payload carries the PDF magic header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

// TextFromPDF extracts plain text from an in-memory PDF payload. A payload
// that fails to parse yields ErrNotPDF, which upload validation relies on.
func TextFromPDF(data []byte) (string, error) {
	if !IsPDF(data) {
		return "", ErrNotPDF
	}

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", errors.Join(ErrNotPDF, err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", errors.Join(ErrNotPDF, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
