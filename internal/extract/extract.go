// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract locates calendar-worthy deadlines in syllabus text.
// Two independent strategies run over the same text: absolute date
// literals ("10/15/2024", "October 15, 2024") and relative week
// references ("Week 3", "weeks 4-6", "2nd week") offset from the
// semester start. Their union is filtered to the semester window
// downstream.
package extract

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"github.com/bhavikaa10/Student-Dashboard/pkg/types"
)

// AbsoluteDates scans text for absolute date literals and resolves each
// match to a calendar date with fuzzy, locale-tolerant parsing
// (month/day/year preference for ambiguous numeric forms). Matches that
// do not parse are discarded silently; malformed fragments are expected
// in free-form syllabus text. The result is deduplicated by resolved
// date, first occurrence wins, and kept in first-seen order.
func AbsoluteDates(text string) []types.Event {
	seen := make(map[time.Time]bool)
	var events []types.Event

	for _, label := range MatchDateLiterals(text) {
		parsed, err := dateparse.ParseAny(label.Text)
		if err != nil {
			continue
		}
		date := types.DateOnly(parsed)
		if seen[date] {
			continue
		}
		seen[date] = true
		events = append(events, types.Event{Date: date, Label: label})
	}

	return events
}

// RelativeWeeks scans text for week references and converts them to
// concrete dates offset from the semester start: week N falls on
// semesterStart + (N-1) weeks. A range "week N-M" yields one event per
// week index in [N, M]; a reversed range (N > M) yields none since the
// iteration is forward-only. No deduplication is applied here.
//
// Event labels are the normalized forms "week N" (range and single
// mentions) and "N week" (ordinal mentions), with the offset of the
// original match.
func RelativeWeeks(text string, semesterStart time.Time) []types.Event {
	start := types.DateOnly(semesterStart)
	var events []types.Event

	for _, m := range MatchWeekPhrases(text) {
		if m.Ordinal {
			events = append(events, types.Event{
				Date:  weekDate(start, m.From),
				Label: types.RawLabel{Text: fmt.Sprintf("%d week", m.From), Offset: m.Label.Offset},
			})
			continue
		}
		for wk := m.From; wk <= m.To; wk++ {
			events = append(events, types.Event{
				Date:  weekDate(start, wk),
				Label: types.RawLabel{Text: fmt.Sprintf("week %d", wk), Offset: m.Label.Offset},
			})
		}
	}

	return events
}

// weekDate returns the date of week N counted from the semester start,
// with week 1 being the start date itself.
func weekDate(start time.Time, week int) time.Time {
	return start.AddDate(0, 0, (week-1)*7)
}

// FilterWindow returns the sublist of events whose dates fall inside the
// semester window, inclusive on both ends, preserving input order. The
// window's validity (start strictly before end) is enforced when it is
// constructed, not here.
func FilterWindow(events []types.Event, w types.SemesterWindow) []types.Event {
	filtered := make([]types.Event, 0, len(events))
	for _, ev := range events {
		if w.Contains(ev.Date) {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}
