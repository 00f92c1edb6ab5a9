// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"strings"
	"testing"
)

// Compile-time check that the production extractor satisfies the
// pipeline boundary.
var _ Extractor = PDFExtractor{}

func TestExtractTextEmptyDocument(t *testing.T) {
	_, err := PDFExtractor{}.ExtractText(nil)
	if err == nil {
		t.Fatal("expected error for empty document")
	}
}

func TestExtractTextNotAPDF(t *testing.T) {
	_, err := PDFExtractor{}.ExtractText([]byte("plain text, not a PDF at all"))
	if err == nil {
		t.Fatal("expected error for non-PDF bytes")
	}
}

func TestExtractTextTruncatedHeader(t *testing.T) {
	// A document that starts like a PDF but is cut off must fail
	// cleanly, not panic.
	_, err := PDFExtractor{}.ExtractText([]byte("%PDF-1.4\n1 0 obj\n"))
	if err == nil {
		t.Fatal("expected error for truncated PDF")
	}
}

func TestSanitize(t *testing.T) {
	if got := sanitize("plain ascii"); got != "plain ascii" {
		t.Errorf("sanitize changed valid text: %q", got)
	}

	broken := string([]byte{'a', 0xff, 'b'})
	got := sanitize(broken)
	if !strings.ContainsRune(got, 'a') || !strings.ContainsRune(got, 'b') {
		t.Errorf("sanitize dropped valid runes: %q", got)
	}
	if got == broken {
		t.Errorf("sanitize left invalid UTF-8 untouched")
	}
}
