package domain

import (
	"errors"
	"fmt"
)

// HourWindow is an inclusive range of local hours, e.g. 5–8.
type HourWindow struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// Contains reports whether hour falls in [From, To].
func (w HourWindow) Contains(hour float64) bool {
	return hour >= w.From && hour <= w.To
}

// MeasurementDefaults fill fields the forecast text does not state.
type MeasurementDefaults struct {
	WindKt       float64 `json:"wspd_kt"`
	GustOffsetKt float64 `json:"gust_offset_kt"` // added to wind when no gust is given
	SeasFt       float64 `json:"seas_ft"`
	PeriodS      float64 `json:"dpd_s"`
}

// BandThresholds are the lower edges (inclusive) of the LOW, MODERATE and
// HIGH bands on prob_run. Anything below High is VERY HIGH.
type BandThresholds struct {
	Low      float64 `json:"low"`
	Moderate float64 `json:"moderate"`
	High     float64 `json:"high"`
}

// Band maps a run probability to its risk band.
func (b BandThresholds) Band(probRun float64) RiskBand {
	switch {
	case probRun >= b.Low:
		return BandLow
	case probRun >= b.Moderate:
		return BandModerate
	case probRun >= b.High:
		return BandHigh
	default:
		return BandVeryHigh
	}
}

// ModelConfig holds every constant of the run/cancel heuristic. Scores are
// percentages; thresholds are in ft, kt and s.
type ModelConfig struct {
	BaseScore float64 `json:"base_score"`

	SeasThreshold1 float64 `json:"seas_threshold_1"`
	SeasPenalty1   float64 `json:"seas_penalty_1"`
	SeasThreshold2 float64 `json:"seas_threshold_2"`
	SeasPenalty2   float64 `json:"seas_penalty_2"`

	WindThreshold float64 `json:"wind_threshold"`
	WindPenalty   float64 `json:"wind_penalty"`
	GustThreshold float64 `json:"gust_threshold"`
	GustPenalty   float64 `json:"gust_penalty"`

	PeriodThreshold1 float64 `json:"period_threshold_1"`
	PeriodPenalty1   float64 `json:"period_penalty_1"`
	PeriodThreshold2 float64 `json:"period_threshold_2"`
	PeriodPenalty2   float64 `json:"period_penalty_2"`

	TODWindows []HourWindow `json:"tod_windows"`
	TODPenalty float64      `json:"tod_penalty"`

	MinScore float64 `json:"min_score"`
	MaxScore float64 `json:"max_score"`

	Defaults MeasurementDefaults `json:"defaults"`
	Bands    BandThresholds      `json:"band_thresholds"`
}

// DefaultModelConfig returns the stock heuristic.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		BaseScore: 90.0,

		SeasThreshold1: 4.0,
		SeasPenalty1:   6.0,
		SeasThreshold2: 6.0,
		SeasPenalty2:   8.0,

		WindThreshold: 22.0,
		WindPenalty:   1.5,
		GustThreshold: 30.0,
		GustPenalty:   1.0,

		PeriodThreshold1: 6.0,
		PeriodPenalty1:   5.0,
		PeriodThreshold2: 7.0,
		PeriodPenalty2:   2.0,

		TODWindows: []HourWindow{{From: 5, To: 8}, {From: 18, To: 22}},
		TODPenalty: 3.0,

		MinScore: 1.0,
		MaxScore: 99.0,

		Defaults: MeasurementDefaults{
			WindKt:       20.0,
			GustOffsetKt: 5.0,
			SeasFt:       4.0,
			PeriodS:      6.0,
		},
		Bands: BandThresholds{Low: 0.90, Moderate: 0.70, High: 0.40},
	}
}

// Validate checks the structural constraints the scorer relies on.
func (c ModelConfig) Validate() error {
	var errs []error
	if c.MinScore > c.MaxScore {
		errs = append(errs, fmt.Errorf("min score %.2f exceeds max score %.2f", c.MinScore, c.MaxScore))
	}
	if c.MinScore < 0 || c.MaxScore > 100 {
		errs = append(errs, errors.New("score clamp must lie within 0–100"))
	}
	if !(c.Bands.Low >= c.Bands.Moderate && c.Bands.Moderate >= c.Bands.High) {
		errs = append(errs, errors.New("band thresholds must be descending: low >= moderate >= high"))
	}
	if c.Defaults.PeriodS <= 0 {
		errs = append(errs, errors.New("default dominant period must be positive"))
	}
	if c.Defaults.WindKt < 0 || c.Defaults.SeasFt < 0 {
		errs = append(errs, errors.New("default wind and seas must not be negative"))
	}
	for _, w := range c.TODWindows {
		if w.From > w.To {
			errs = append(errs, fmt.Errorf("time-of-day window %.2f-%.2f is reversed", w.From, w.To))
		}
	}
	return errors.Join(errs...)
}
