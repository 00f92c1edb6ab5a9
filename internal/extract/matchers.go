// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strconv"

	"github.com/bhavikaa10/Student-Dashboard/pkg/types"
)

// dateLiteralPattern matches absolute date literals in two families:
// numeric day/month/year with "/" or "-" separators (1-2 digit day and
// month, 2-4 digit year) and word-form "Month D, Y" with a 4-digit year.
// Matching is case-insensitive and whole-word-bounded.
var dateLiteralPattern = regexp.MustCompile(
	`(?i)\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\w+\s+\d{1,2},\s*\d{4})\b`,
)

// weekPattern matches relative week references in three surface forms:
// "week N" (with optional plural), "week N-M" (inclusive range), and
// ordinal "Nth week".
// Submatches: 1 = range start, 2 = range end (optional), 3 = ordinal week.
var weekPattern = regexp.MustCompile(
	`(?i)\b(?:week(?:s)?\s*(\d{1,2})(?:\s*-\s*(\d{1,2}))?|(\d{1,2})(?:st|nd|rd|th)\s+week)\b`,
)

// MatchDateLiterals returns every non-overlapping date-literal match in
// text, in source order, with first-occurrence offsets. Matches are not
// yet validated as real dates; resolution happens in AbsoluteDates.
func MatchDateLiterals(text string) []types.RawLabel {
	idxs := dateLiteralPattern.FindAllStringIndex(text, -1)
	labels := make([]types.RawLabel, 0, len(idxs))
	for _, idx := range idxs {
		labels = append(labels, types.RawLabel{Text: text[idx[0]:idx[1]], Offset: idx[0]})
	}
	return labels
}

// WeekMatch is one week-phrase occurrence. A single week mention has
// From == To; an inclusive range has From < To (or From > To when the
// source text reverses the bounds); the ordinal form sets Ordinal.
type WeekMatch struct {
	// Label is the matched substring and its offset in the source text.
	Label types.RawLabel

	// From and To are the referenced week indices, both inclusive.
	From, To int

	// Ordinal marks the "Nth week" surface form.
	Ordinal bool
}

// MatchWeekPhrases returns every week-phrase match in text, in source
// order. Week indices are in the 1-2 digit range the pattern admits; no
// further validation is applied here.
func MatchWeekPhrases(text string) []WeekMatch {
	idxs := weekPattern.FindAllStringSubmatchIndex(text, -1)
	matches := make([]WeekMatch, 0, len(idxs))
	for _, idx := range idxs {
		m := WeekMatch{
			Label: types.RawLabel{Text: text[idx[0]:idx[1]], Offset: idx[0]},
		}
		switch {
		case idx[2] >= 0: // "week N" or "week N-M"
			m.From = mustAtoi(text[idx[2]:idx[3]])
			m.To = m.From
			if idx[4] >= 0 {
				m.To = mustAtoi(text[idx[4]:idx[5]])
			}
		case idx[6] >= 0: // "Nth week"
			m.From = mustAtoi(text[idx[6]:idx[7]])
			m.To = m.From
			m.Ordinal = true
		default:
			continue
		}
		matches = append(matches, m)
	}
	return matches
}

// mustAtoi converts a digit-only submatch. The pattern guarantees 1-2
// decimal digits, so conversion cannot fail.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
