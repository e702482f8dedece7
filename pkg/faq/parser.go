package faq

import (
	"regexp"
	"strings"
)

// The upstream generator is asked to separate the title with "*", each
// question from its answer with "~", and the five entries with "///".
// It drifts from that format constantly, so everything is normalized to
// a single "*" separator before splitting.

// SegmentCount is the full segment layout: title, then five Q/A pairs.
const SegmentCount = 11

var (
	strayQuotes   = regexp.MustCompile(`['"]`)
	listNumbering = regexp.MustCompile(`\b\d+\.\)`)
	starTilde     = regexp.MustCompile(`\* ~`)
	slashesTilde  = regexp.MustCompile(`/// ~`)
	starSlashes   = regexp.MustCompile(`\* ///`)
	slashes       = regexp.MustCompile(`///`)
	tilde         = regexp.MustCompile(`~`)
	doubleStar    = regexp.MustCompile(`\* \*`)

	questionTilde      = regexp.MustCompile(`\?~`)
	questionSpaceTilde = regexp.MustCompile(`\? ~`)
	bareQuestion       = regexp.MustCompile(`\?([^~*])`)
	trailingQuestion   = regexp.MustCompile(`\?\z`)
)

// ensureQuestionFormat inserts the canonical separator after any
// sentence ending in "?" that is not already followed by one. The
// generator regularly omits the explicit marker after a question.
func ensureQuestionFormat(text string) string {
	text = questionTilde.ReplaceAllString(text, "? *")
	text = questionSpaceTilde.ReplaceAllString(text, "? *")
	text = bareQuestion.ReplaceAllString(text, "? *$1")
	text = trailingQuestion.ReplaceAllString(text, "? *")
	return text
}

func cleanText(text string) string {
	text = strayQuotes.ReplaceAllString(text, "")
	text = listNumbering.ReplaceAllString(text, "")
	text = starTilde.ReplaceAllString(text, "*")
	text = slashesTilde.ReplaceAllString(text, "*")
	text = starSlashes.ReplaceAllString(text, "*")
	text = slashes.ReplaceAllString(text, "*")
	text = tilde.ReplaceAllString(text, "*")
	text = ensureQuestionFormat(text)
	text = doubleStar.ReplaceAllString(text, "*")
	return text
}

// Parse splits raw generator output into ordered segments: index 0 is
// the title, indices 1..10 alternate question/answer for five entries.
// Malformed input yields fewer segments, never an error; callers treat
// missing trailing segments as empty fields rather than rejecting the
// response.
func Parse(raw string) []string {
	parts := strings.Split(cleanText(raw), "*")
	items := make([]string, 0, SegmentCount)
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		items = append(items, part)
		if len(items) == SegmentCount {
			break
		}
	}
	return items
}

// Segment returns items[i], or "" when the parse recovered fewer
// segments than the full layout.
func Segment(items []string, i int) string {
	if i < len(items) {
		return items[i]
	}
	return ""
}
