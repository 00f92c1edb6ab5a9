// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext is the PDF-to-text boundary of the pipeline. The core
// only needs "raw bytes in, one string out"; everything behind that is
// delegated to the PDF library and hidden behind the Extractor
// interface so tests can substitute plain text.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Extractor turns a raw PDF document into plain text. A document that
// is not a readable PDF is a fatal input error surfaced to the user;
// extraction is never retried.
type Extractor interface {
	// ExtractText returns the full plain text of the document.
	ExtractText(data []byte) (string, error)
}

// PDFExtractor is the production Extractor built on ledongthuc/pdf.
type PDFExtractor struct{}

// ExtractText decodes every page of the PDF and concatenates the text.
func (PDFExtractor) ExtractText(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", errors.New("empty document")
	}

	// The underlying library panics on some malformed files instead of
	// returning an error; fold those into the unreadable-document error.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("reading PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("reading PDF text: %w", err)
	}

	return sanitize(buf.String()), nil
}

// sanitize replaces invalid UTF-8 sequences with the replacement rune
// so downstream text scanning never chokes on decoder artifacts.
func sanitize(text string) string {
	if utf8.ValidString(text) {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		sb.WriteRune(r)
	}
	return sb.String()
}
