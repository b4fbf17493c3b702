package domain

import (
	"fmt"
	"strings"
	"time"
)

// fallbackLabels are tried in order when no period is named after the
// departure weekday.
var fallbackLabels = []string{"TONIGHT", "THIS AFTERNOON", "TODAY"}

// WeekdayAbbrev returns the upper-case three-letter weekday, e.g. "MON".
func WeekdayAbbrev(date time.Time) string {
	return strings.ToUpper(date.Weekday().String()[:3])
}

// SelectPeriod picks the forecast period for a departure date: the first
// period whose label starts with the weekday abbreviation, else the first
// period starting with the earliest matching fallback label, else the first
// period. Label matching is a prefix heuristic over whatever the bulletin
// happens to use, so "MON NIGHT" also matches a Monday.
func SelectPeriod(periods []ForecastPeriod, date time.Time) (ForecastPeriod, error) {
	if len(periods) == 0 {
		return ForecastPeriod{}, ErrNoPeriodsParsed
	}

	abbrev := WeekdayAbbrev(date)
	for _, p := range periods {
		if strings.HasPrefix(p.Label, abbrev) {
			return p, nil
		}
	}

	for _, pref := range fallbackLabels {
		for _, p := range periods {
			if strings.HasPrefix(p.Label, pref) {
				return p, nil
			}
		}
	}

	return periods[0], nil
}

// FindPeriod resolves a manually chosen label. Matching ignores case and
// surrounding whitespace; the first period with that label wins.
func FindPeriod(periods []ForecastPeriod, label string) (ForecastPeriod, error) {
	want := strings.TrimSpace(label)
	for _, p := range periods {
		if strings.EqualFold(p.Label, want) {
			return p, nil
		}
	}
	return ForecastPeriod{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, label)
}

// ChoosePeriod applies the manual override in req when set, otherwise the
// automatic selector.
func ChoosePeriod(periods []ForecastPeriod, req Request) (ForecastPeriod, Selection, error) {
	if strings.TrimSpace(req.PeriodLabel) != "" {
		p, err := FindPeriod(periods, req.PeriodLabel)
		return p, SelectionManual, err
	}
	p, err := SelectPeriod(periods, req.Date)
	return p, SelectionAuto, err
}
