package domain

import (
	"fmt"
	"strings"
	"time"
)

// minutesPerDay bounds a departure time.
const minutesPerDay = 24 * 60

// ParseDepartTime parses an HH:MM local departure time into minutes after
// midnight.
func ParseDepartTime(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: departure time %q: want HH:MM", ErrInvalidRequest, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ParseDepartDate parses a YYYY-MM-DD date in loc.
func ParseDepartDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: departure date %q: want YYYY-MM-DD", ErrInvalidRequest, s)
	}
	return d, nil
}

// AssessPeriod scores one forecast period for a departure. It is the pure
// tail of the pipeline: measurement extraction, scoring and assembly of the
// output record.
func AssessPeriod(zone string, period ForecastPeriod, sel Selection, req Request, cfg ModelConfig) Assessment {
	m := ExtractMeasurements(period.Body, cfg.Defaults)

	tod := req.TimeOfDay()
	risk := ScoreRisk(m, &tod, cfg)

	return Assessment{
		Date:            req.Date.Format(time.DateOnly),
		DepartLocalTime: req.DepartLocalTime(),
		Zone:            zone,
		Label:           period.Label,
		Body:            period.Body,
		Selection:       sel,

		SeasFt:    m.SeasFt,
		WindKt:    m.WindKt,
		GustKt:    m.GustKt,
		PeriodS:   m.PeriodS,
		Defaulted: m.Defaulted,

		ProbRun:    risk.ProbRun,
		ProbCancel: risk.ProbCancel,
		RiskBand:   risk.Band,

		AssessedAt: clock.Now().UTC(),
	}
}

// ValidateRequest rejects departures outside a single day.
func ValidateRequest(req Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: departure date is required", ErrInvalidRequest)
	}
	if req.DepartMinutes < 0 || req.DepartMinutes >= minutesPerDay {
		return fmt.Errorf("%w: departure time %d minutes is outside 00:00-23:59", ErrInvalidRequest, req.DepartMinutes)
	}
	return nil
}
