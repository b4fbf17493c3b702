package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultBoundary matches a sibling zone heading on its own line, e.g.
// "\nVineyard Sound\n".
var DefaultBoundary = regexp.MustCompile(`\n[A-Z][A-Za-z ]+Sound\n`)

// ExtractRegion returns the block of text for one marine zone. The block
// starts at the first occurrence of anchor and ends just before the next line
// matching boundary, or at the end of text when there is none. A nil boundary
// always runs to the end of text.
func ExtractRegion(text, anchor string, boundary *regexp.Regexp) (string, error) {
	start := strings.Index(text, anchor)
	if anchor == "" || start < 0 {
		return "", fmt.Errorf("%w: %q", ErrRegionNotFound, anchor)
	}
	block := text[start:]

	// Search from one past the anchor so its own heading line cannot match.
	if boundary != nil && len(block) > 1 {
		if loc := boundary.FindStringIndex(block[1:]); loc != nil {
			block = block[:loc[0]+1]
		}
	}

	return strings.TrimSpace(block), nil
}
