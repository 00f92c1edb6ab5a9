// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/bhavikaa10/Student-Dashboard/pkg/types"
)

// Row is one row of the tabular view: the ISO-8601 date string and the
// event's display title.
type Row struct {
	Date  string `json:"date" yaml:"date"`
	Title string `json:"title" yaml:"title"`
}

// Rows converts the event table to export rows, preserving order.
func Rows(table types.EventTable) []Row {
	rows := make([]Row, len(table))
	for i, ev := range table {
		rows[i] = Row{Date: ev.Date.Format(types.ISODate), Title: ev.Title}
	}
	return rows
}

// WriteYAML writes the tabular view to path as YAML.
func WriteYAML(path string, table types.EventTable) error {
	data, err := yaml.Marshal(Rows(table))
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteJSON writes the tabular view to path as indented JSON.
func WriteJSON(path string, table types.EventTable) error {
	data, err := json.MarshalIndent(Rows(table), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// FormatTable writes a fixed-width text rendering of the table to w,
// the CLI's on-screen equivalent of the calendar grid.
func FormatTable(w io.Writer, table types.EventTable) {
	fmt.Fprintf(w, "%-12s  %s\n", "Date", "Event Description")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, row := range Rows(table) {
		title := row.Title
		if runes := []rune(title); len(runes) > 46 {
			title = string(runes[:43]) + "..."
		}
		fmt.Fprintf(w, "%-12s  %s\n", row.Date, title)
	}
	fmt.Fprintf(w, "\n%d event(s)\n", len(table))
}
