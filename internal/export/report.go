// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/bhavikaa10/Student-Dashboard/pkg/types"
)

// ReportLines renders the table rows as the report's body lines,
// "<ISO date>: <title>", in table order.
func ReportLines(table types.EventTable) []string {
	lines := make([]string, len(table))
	for i, row := range table {
		lines[i] = fmt.Sprintf("%s: %s", row.Date.Format(types.ISODate), row.Title)
	}
	return lines
}

// Report encodes the event table as a PDF document: a centered heading
// followed by one line per event. Pages break automatically when the
// table outgrows one page.
func Report(table types.EventTable, heading string) ([]byte, error) {
	if heading == "" {
		heading = types.DefaultReportHeading
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	// Titles may carry runes outside the core-font code page (snippet
	// ellipses in particular); translate rather than mojibake.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	doc.SetFont("Arial", "B", 14)
	doc.CellFormat(0, 10, tr(heading), "", 1, "C", false, 0, "")

	doc.SetFont("Arial", "", 12)
	for _, line := range ReportLines(table) {
		doc.CellFormat(0, 8, tr(line), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering report PDF: %w", err)
	}
	return buf.Bytes(), nil
}
