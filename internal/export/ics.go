// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export encodes the event table into its output artifacts: an
// iCalendar file, a paginated PDF report, and YAML/JSON/text renderings
// of the tabular view. All encoders are pure transforms of the table;
// none re-derives dates on its own.
package export

import (
	"crypto/sha256"
	"fmt"

	ics "github.com/arran4/golang-ical"

	"github.com/bhavikaa10/Student-Dashboard/pkg/types"
)

// prodID identifies this encoder in generated calendar files.
const prodID = "-//Student Dashboard//Syllabus Calendar//EN"

// ICS serializes the event table to an iCalendar payload with one
// all-day VEVENT per row: SUMMARY is the inferred title, DTSTART the
// event date. Event UIDs are deterministic so re-exporting the same
// table yields an identical payload.
func ICS(table types.EventTable) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)

	for _, row := range table {
		ev := cal.AddEvent(eventUID(row))
		ev.SetSummary(row.Title)
		ev.SetAllDayStartAt(row.Date)
		ev.SetDtStampTime(row.Date)
	}

	return []byte(cal.Serialize()), nil
}

// eventUID derives a stable UID from the row's date and title: the
// first 12 hex characters of SHA-256(date, title), domain-qualified.
func eventUID(row types.TitledEvent) string {
	h := sha256.New()
	h.Write([]byte(row.Date.Format(types.ISODate)))
	h.Write([]byte(row.Title))
	return fmt.Sprintf("%x", h.Sum(nil))[:12] + "@student-dashboard"
}
