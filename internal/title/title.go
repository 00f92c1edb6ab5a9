// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package title reduces the text surrounding an extracted label to a
// short human-readable event title.
package title

import (
	"strings"
	"unicode/utf8"

	"github.com/bhavikaa10/Student-Dashboard/pkg/types"
)

// fallbackTitle is returned when a label cannot be located in the text.
const fallbackTitle = "Event"

// maxSnippet is the length, in runes, a snippet title is truncated to
// when no keyword is found in the context window.
const maxSnippet = 40

// Inferencer derives display titles from the context around a label's
// first occurrence. It is a pure function of (text, label): repeated
// calls with the same inputs yield identical titles, which the table
// builder and exporters rely on when they invoke it independently.
type Inferencer struct {
	window   int
	keywords []string
}

// New builds an Inferencer from cfg, applying defaults for a
// non-positive window or an empty keyword list.
func New(cfg types.TitleConfig) *Inferencer {
	window := cfg.Window
	if window <= 0 {
		window = types.DefaultTitleWindow
	}
	keywords := cfg.Keywords
	if len(keywords) == 0 {
		keywords = types.DefaultKeywords
	}
	return &Inferencer{window: window, keywords: keywords}
}

// Infer returns a short title for the event identified by label.
//
// It locates the first occurrence of label in text (case-sensitive); if
// the label is absent the literal fallback "Event" is returned. The
// surrounding window, clamped to the text bounds and with newlines
// collapsed to spaces, is scanned for the configured keywords
// case-insensitively; the first hit is returned capitalized. With no
// keyword present, the trimmed window is returned, truncated to 40
// runes with an ellipsis when longer.
func (inf *Inferencer) Infer(text, label string) string {
	idx := strings.Index(text, label)
	if idx == -1 {
		return fallbackTitle
	}

	// Widen the byte bounds outward to rune boundaries so a clamp never
	// leaves a partial rune at the window edge.
	start := idx - inf.window
	if start < 0 {
		start = 0
	}
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	end := idx + len(label) + inf.window
	if end > len(text) {
		end = len(text)
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}
	window := strings.ReplaceAll(text[start:end], "\n", " ")

	lower := strings.ToLower(window)
	for _, kw := range inf.keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return capitalize(kw)
		}
	}

	trimmed := strings.TrimSpace(window)
	runes := []rune(trimmed)
	if len(runes) > maxSnippet {
		return string(runes[:maxSnippet]) + "…"
	}
	return trimmed
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
