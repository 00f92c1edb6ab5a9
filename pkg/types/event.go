// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the syllabus calendar
// pipeline: raw matches, events, the event table, and the semester window,
// plus the per-stage configuration structs.
package types

import (
	"fmt"
	"time"
)

// RawLabel is a substring matched in the syllabus text, either a date
// literal ("10/15/2024") or a week phrase ("week 3"), together with the
// byte offset of its first occurrence. RawLabels exist only during
// extraction; they are not carried into exported artifacts.
type RawLabel struct {
	// Text is the matched substring exactly as it appears in the source.
	Text string

	// Offset is the byte offset of the match in the source text.
	Offset int
}

// Event pairs a resolved calendar date with the raw label it came from.
// Events are immutable once produced by an extractor.
type Event struct {
	// Date is the resolved calendar date, normalized to midnight UTC.
	Date time.Time

	// Label is the source match that produced this event.
	Label RawLabel
}

// TitledEvent is an Event whose label has been resolved to a short
// display title. It is derived, never mutated.
type TitledEvent struct {
	// Date is the event date, normalized to midnight UTC.
	Date time.Time `json:"date" yaml:"date"`

	// Title is the inferred human-readable title.
	Title string `json:"title" yaml:"title"`
}

// EventTable is the ordered sequence of titled events, sorted ascending
// by date. It is the single canonical artifact every exporter consumes;
// exporters never re-derive dates independently.
type EventTable []TitledEvent

// IsEmpty reports whether the table holds no events. An empty table is
// a valid terminal state ("no deadlines found"), not an error.
func (t EventTable) IsEmpty() bool { return len(t) == 0 }

// Dates returns the ISO-8601 date string of every row, in table order.
func (t EventTable) Dates() []string {
	out := make([]string, len(t))
	for i, ev := range t {
		out[i] = ev.Date.Format(ISODate)
	}
	return out
}

// ISODate is the layout for ISO-8601 calendar dates (YYYY-MM-DD).
const ISODate = "2006-01-02"

// SemesterWindow is the inclusive date range within which extracted
// events are considered relevant.
type SemesterWindow struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// NewSemesterWindow validates and constructs a SemesterWindow. The start
// must be strictly before the end; equal or inverted bounds are a fatal
// input error surfaced to the user before the pipeline runs.
func NewSemesterWindow(start, end time.Time) (SemesterWindow, error) {
	start = DateOnly(start)
	end = DateOnly(end)
	if !start.Before(end) {
		return SemesterWindow{}, fmt.Errorf("semester start %s must be before end %s",
			start.Format(ISODate), end.Format(ISODate))
	}
	return SemesterWindow{Start: start, End: end}, nil
}

// Contains reports whether d falls inside the window, inclusive both ends.
func (w SemesterWindow) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// DateOnly strips the time-of-day and timezone from t, returning the
// calendar date at midnight UTC. All pipeline dates are normalized this
// way so that equality and ordering compare calendar days.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
