// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the full syllabus-to-calendar transformation:
// text extraction, both date extractors, semester filtering, table
// building, and export encoding. The flow is a straight line with no
// backward edges; every stage is a pure in-memory transform.
package pipeline

import (
	"fmt"
	"sort"

	"github.com/bhavikaa10/Student-Dashboard/internal/export"
	"github.com/bhavikaa10/Student-Dashboard/internal/extract"
	"github.com/bhavikaa10/Student-Dashboard/internal/pdftext"
	"github.com/bhavikaa10/Student-Dashboard/internal/title"
	"github.com/bhavikaa10/Student-Dashboard/pkg/types"
)

// Result holds everything one (document, window) run produces: the
// canonical event table, the source text it was built from, and both
// exported payloads.
type Result struct {
	Table  types.EventTable
	Text   string
	ICS    []byte
	Report []byte
}

// BuildTable titles every event via the inferencer and sorts the result
// ascending by date. The sort is stable, so events on the same date
// keep their input order. Duplicate dates can occur when the two
// extractors independently resolve to the same day; they are not
// collapsed here.
func BuildTable(events []types.Event, text string, inf *title.Inferencer) types.EventTable {
	table := make(types.EventTable, 0, len(events))
	for _, ev := range events {
		table = append(table, types.TitledEvent{
			Date:  ev.Date,
			Title: inf.Infer(text, ev.Label.Text),
		})
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Date.Before(table[j].Date)
	})
	return table
}

// Run executes the pipeline for one document and semester window. When
// a cache is supplied and holds a result for the exact (document bytes,
// window) pair, that result is returned without recomputation.
//
// An empty table is a valid result, not an error; the only failures are
// an unreadable document and export encoding errors.
func Run(doc []byte, window types.SemesterWindow, ex pdftext.Extractor, cfg types.PipelineConfig, cache *Cache) (*Result, error) {
	if res, ok := cache.Get(doc, window); ok {
		return res, nil
	}

	text, err := ex.ExtractText(doc)
	if err != nil {
		return nil, fmt.Errorf("extracting document text: %w", err)
	}

	events := extract.AbsoluteDates(text)
	events = append(events, extract.RelativeWeeks(text, window.Start)...)
	events = extract.FilterWindow(events, window)

	table := BuildTable(events, text, title.New(cfg.Title))

	icsData, err := export.ICS(table)
	if err != nil {
		return nil, fmt.Errorf("encoding calendar file: %w", err)
	}
	reportData, err := export.Report(table, cfg.Export.ReportHeading)
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}

	res := &Result{
		Table:  table,
		Text:   text,
		ICS:    icsData,
		Report: reportData,
	}
	cache.Put(doc, window, res)
	return res, nil
}
