package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxLabelLen is the longest line still treated as a period label.
const maxLabelLen = 20

// timestampRe matches issuance times such as "434 AM EDT Sun Oct 18 2026".
var timestampRe = regexp.MustCompile(`\d{3,4}\s+(?:AM|PM)`)

// LineClass is the segmenter's classification of a single bulletin line.
type LineClass int

const (
	LineBlank LineClass = iota
	LineAdmin
	LineLabel
	LineBody
)

func (c LineClass) String() string {
	switch c {
	case LineBlank:
		return "blank"
	case LineAdmin:
		return "admin"
	case LineLabel:
		return "label"
	case LineBody:
		return "body"
	default:
		return "unknown"
	}
}

// ClassifyLine decides how the segmenter treats a line. Administrative lines
// (timestamps, WARNING/WATCH headlines) are checked before labels.
func ClassifyLine(line string) LineClass {
	s := strings.TrimSpace(line)
	switch {
	case s == "":
		return LineBlank
	case timestampRe.MatchString(s), strings.Contains(s, "WARNING"), strings.Contains(s, "WATCH"):
		return LineAdmin
	case isUpper(s) && utf8.RuneCountInString(s) <= maxLabelLen:
		return LineLabel
	default:
		return LineBody
	}
}

// isUpper reports whether s has at least one cased letter and no lower-case ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

type segmentState int

const (
	stateNoActivePeriod segmentState = iota
	stateInPeriod
)

// segmenter accumulates (label, body) pairs over a left-to-right line scan.
type segmenter struct {
	state   segmentState
	label   string
	body    []string
	periods []ForecastPeriod
}

func (s *segmenter) step(class LineClass, line string) {
	switch class {
	case LineBlank, LineAdmin:
		return
	case LineLabel:
		s.flush()
		s.state = stateInPeriod
		s.label = strings.TrimSpace(line)
	case LineBody:
		if s.state == stateInPeriod {
			s.body = append(s.body, strings.TrimSpace(line))
		}
	}
}

// flush emits the active period if it has both a label and a body, then
// returns to stateNoActivePeriod.
func (s *segmenter) flush() {
	if s.state == stateInPeriod && s.label != "" && len(s.body) > 0 {
		s.periods = append(s.periods, ForecastPeriod{
			Label: s.label,
			Body:  strings.TrimSpace(strings.Join(s.body, " ")),
		})
	}
	s.state = stateNoActivePeriod
	s.label = ""
	s.body = nil
}

// SegmentPeriods splits a zone block into its labeled forecast periods, in
// document order. Everything up to and including the first line containing
// anchor is discarded. A label with no body lines is dropped.
func SegmentPeriods(block, anchor string) ([]ForecastPeriod, error) {
	var seg segmenter
	started := false

	for _, line := range strings.Split(block, "\n") {
		if !started {
			started = strings.Contains(line, anchor)
			continue
		}
		seg.step(ClassifyLine(line), line)
	}
	seg.flush()

	if len(seg.periods) == 0 {
		return nil, fmt.Errorf("%w: zone %q", ErrNoPeriodsParsed, anchor)
	}
	return seg.periods, nil
}

// ParseBulletin runs the text stages of the pipeline: normalize the raw
// document, extract the zone block and segment it into periods.
func ParseBulletin(raw, anchor string, boundary *regexp.Regexp) ([]ForecastPeriod, error) {
	block, err := ExtractRegion(NormalizeText(raw), anchor, boundary)
	if err != nil {
		return nil, err
	}
	return SegmentPeriods(block, anchor)
}
