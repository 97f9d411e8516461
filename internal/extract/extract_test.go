package extract

import (
	"errors"
	"testing"
)

func TestIsPDF(t *testing.T) {
	if !IsPDF([]byte("%PDF-1.7\n...")) {
		t.Fatal("expected PDF header to be recognized")
	}
	if IsPDF([]byte("plain text")) {
		t.Fatal("expected non-PDF payload to be rejected")
	}
	if IsPDF(nil) {
		t.Fatal("expected empty payload to be rejected")
	}
}

func TestTextFromPDFRejectsNonPDF(t *testing.T) {
	_, err := TextFromPDF([]byte("hello world"))
	if !errors.Is(err, ErrNotPDF) {
		t.Fatalf("err = %v, want ErrNotPDF", err)
	}
}

func TestTextFromPDFRejectsTruncated(t *testing.T) {
	// Valid magic bytes but no document structure behind them.
	_, err := TextFromPDF([]byte("%PDF-1.4"))
	if err == nil {
		t.Fatal("expected truncated PDF to fail")
	}
}
