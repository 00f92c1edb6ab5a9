// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bhavikaa10/Student-Dashboard/internal/title"
	"github.com/bhavikaa10/Student-Dashboard/pkg/types"
)

// fakeExtractor returns canned text instead of decoding a PDF, and
// counts calls so cache behavior can be verified.
type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) ExtractText(_ []byte) (string, error) {
	f.calls++
	return f.text, f.err
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testWindow(t *testing.T) types.SemesterWindow {
	t.Helper()
	w, err := types.NewSemesterWindow(date(2024, time.September, 1), date(2024, time.December, 15))
	if err != nil {
		t.Fatal(err)
	}
	return w
}

// --- BuildTable ---

func TestBuildTableSortsAscending(t *testing.T) {
	// The filler keeps the two labels' context windows disjoint, so each
	// row is titled from its own surroundings.
	filler := strings.Repeat("Office hours and reading schedule follow. ", 5)
	text := "Midterm 10/15/2024 in class. " + filler + "Final exam 12/10/2024 at noon."
	events := []types.Event{
		{Date: date(2024, time.December, 10), Label: types.RawLabel{Text: "12/10/2024"}},
		{Date: date(2024, time.October, 15), Label: types.RawLabel{Text: "10/15/2024"}},
	}

	table := BuildTable(events, text, title.New(types.TitleConfig{}))

	if len(table) != 2 {
		t.Fatalf("got %d rows, want 2", len(table))
	}
	if !table[0].Date.Equal(date(2024, time.October, 15)) {
		t.Errorf("table[0].Date = %v, want the earlier date first", table[0].Date)
	}
	if table[0].Title != "Midterm" {
		t.Errorf("table[0].Title = %q, want %q", table[0].Title, "Midterm")
	}
	if table[1].Title != "Exam" {
		t.Errorf("table[1].Title = %q, want %q", table[1].Title, "Exam")
	}
}

func TestBuildTableStableOnEqualDates(t *testing.T) {
	// Duplicate dates from mixed sources are kept, in input order.
	text := "quiz on 10/15/2024 and week 7 lab"
	events := []types.Event{
		{Date: date(2024, time.October, 15), Label: types.RawLabel{Text: "10/15/2024"}},
		{Date: date(2024, time.October, 15), Label: types.RawLabel{Text: "week 7"}},
	}

	table := BuildTable(events, text, title.New(types.TitleConfig{}))

	if len(table) != 2 {
		t.Fatalf("got %d rows, want 2", len(table))
	}
	if table[0].Title != "Quiz" || table[1].Title != "Quiz" {
		// Both context windows cover the whole short text; the keyword
		// list ranks quiz first either way.
		t.Errorf("titles = %q, %q", table[0].Title, table[1].Title)
	}
}

func TestBuildTableEmpty(t *testing.T) {
	table := BuildTable(nil, "", title.New(types.TitleConfig{}))
	if !table.IsEmpty() {
		t.Errorf("expected empty table, got %d rows", len(table))
	}
}

// --- Run ---

func TestRunEndToEnd(t *testing.T) {
	// A date literal and a week reference produce one row each: the
	// week-3 offset from 2024-09-01 lands on 2024-09-15.
	ex := &fakeExtractor{text: "Course plan.\nWeek 3: readings.\nMidterm on 10/15/2024 in class."}

	res, err := Run([]byte("doc"), testWindow(t), ex, types.PipelineConfig{}, NewCache())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Table) != 2 {
		t.Fatalf("got %d rows, want 2: %v", len(res.Table), res.Table)
	}
	if !res.Table[0].Date.Equal(date(2024, time.September, 15)) {
		t.Errorf("row 0 date = %v, want 2024-09-15", res.Table[0].Date)
	}
	if !res.Table[1].Date.Equal(date(2024, time.October, 15)) {
		t.Errorf("row 1 date = %v, want 2024-10-15", res.Table[1].Date)
	}
	if res.Table[1].Title != "Midterm" {
		t.Errorf("row 1 title = %q, want %q", res.Table[1].Title, "Midterm")
	}

	// Both payloads are produced from the same table.
	if !bytes.Contains(res.ICS, []byte("BEGIN:VCALENDAR")) {
		t.Error("ICS payload missing VCALENDAR envelope")
	}
	for _, compact := range []string{"20240915", "20241015"} {
		if !bytes.Contains(res.ICS, []byte(compact)) {
			t.Errorf("ICS payload missing date %s", compact)
		}
	}
	if !bytes.HasPrefix(res.Report, []byte("%PDF")) {
		t.Error("report payload is not a PDF document")
	}
}

func TestRunEmptyTextYieldsEmptyTable(t *testing.T) {
	ex := &fakeExtractor{text: ""}

	res, err := Run([]byte("doc"), testWindow(t), ex, types.PipelineConfig{}, NewCache())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Table.IsEmpty() {
		t.Errorf("got %d rows, want empty table", len(res.Table))
	}
	if len(res.ICS) == 0 || len(res.Report) == 0 {
		t.Error("exports should still be produced for an empty table")
	}
}

func TestRunFiltersOutsideWindow(t *testing.T) {
	ex := &fakeExtractor{text: "Orientation 8/20/2024. Midterm 10/15/2024. Makeup 1/10/2025."}

	res, err := Run([]byte("doc"), testWindow(t), ex, types.PipelineConfig{}, NewCache())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Table) != 1 {
		t.Fatalf("got %d rows, want 1: %v", len(res.Table), res.Table)
	}
	if !res.Table[0].Date.Equal(date(2024, time.October, 15)) {
		t.Errorf("date = %v, want 2024-10-15", res.Table[0].Date)
	}
}

func TestRunExtractionFailureIsFatal(t *testing.T) {
	ex := &fakeExtractor{err: errors.New("not a PDF")}

	_, err := Run([]byte("doc"), testWindow(t), ex, types.PipelineConfig{}, NewCache())
	if err == nil {
		t.Fatal("expected error for unreadable document")
	}
	if !strings.Contains(err.Error(), "not a PDF") {
		t.Errorf("error = %v, want wrapped extractor error", err)
	}
}

// --- memoization ---

func TestRunMemoizesByDocumentAndWindow(t *testing.T) {
	ex := &fakeExtractor{text: "Midterm on 10/15/2024."}
	cache := NewCache()
	window := testWindow(t)
	doc := []byte("doc-bytes")

	first, err := Run(doc, window, ex, types.PipelineConfig{}, cache)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Run(doc, window, ex, types.PipelineConfig{}, cache)
	if err != nil {
		t.Fatal(err)
	}

	if ex.calls != 1 {
		t.Errorf("extractor called %d times, want 1 (second run memoized)", ex.calls)
	}
	if first != second {
		t.Error("memoized run returned a different result value")
	}
	if cache.Len() != 1 {
		t.Errorf("cache holds %d entries, want 1", cache.Len())
	}
}

func TestRunRecomputesOnDifferentWindow(t *testing.T) {
	ex := &fakeExtractor{text: "Midterm on 10/15/2024."}
	cache := NewCache()
	doc := []byte("doc-bytes")

	if _, err := Run(doc, testWindow(t), ex, types.PipelineConfig{}, cache); err != nil {
		t.Fatal(err)
	}

	other, err := types.NewSemesterWindow(date(2025, time.January, 6), date(2025, time.May, 1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Run(doc, other, ex, types.PipelineConfig{}, cache); err != nil {
		t.Fatal(err)
	}

	if ex.calls != 2 {
		t.Errorf("extractor called %d times, want 2 (window is part of the key)", ex.calls)
	}
	if cache.Len() != 2 {
		t.Errorf("cache holds %d entries, want 2", cache.Len())
	}
}

func TestRunWithNilCache(t *testing.T) {
	ex := &fakeExtractor{text: "Midterm on 10/15/2024."}

	res, err := Run([]byte("doc"), testWindow(t), ex, types.PipelineConfig{}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Table) != 1 {
		t.Errorf("got %d rows, want 1", len(res.Table))
	}
}
