package domain

import (
	"html"
	"regexp"
	"strings"
)

var (
	// tagRe matches any angle-bracket markup span.
	tagRe = regexp.MustCompile(`<[^>]+>`)

	// blankRunRe matches two or more consecutive blank (or whitespace-only) lines.
	blankRunRe = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

// NormalizeText converts the NDBC page markup into plain bulletin text.
// Each tag becomes a newline so words on either side of it never merge,
// entities are decoded, and runs of blank lines collapse to a single one.
func NormalizeText(raw string) string {
	text := tagRe.ReplaceAllString(raw, "\n")
	// Non-breaking spaces become plain ones so \s in the measurement rules sees them.
	text = strings.ReplaceAll(html.UnescapeString(text), "\u00a0", " ")
	return blankRunRe.ReplaceAllString(text, "\n\n")
}
