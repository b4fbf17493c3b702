package domain

import (
	"fmt"
	"time"
)

// ForecastPeriod is one labeled section of a zone block, e.g. "TONIGHT".
type ForecastPeriod struct {
	Label string `json:"label"`
	Body  string `json:"body"`
}

// Measurements are the physical quantities scored for a forecast period.
// Every field is always populated; Defaulted names the ones that came from
// MeasurementDefaults rather than the forecast text.
type Measurements struct {
	SeasFt  float64 `json:"seas_ft"`
	WindKt  float64 `json:"wspd_kt"`
	GustKt  float64 `json:"gust_kt"`
	PeriodS float64 `json:"dpd_s"`

	Defaulted []string `json:"defaulted,omitempty"`
}

// RiskBand is the human-facing cancellation risk label.
type RiskBand string

const (
	BandLow      RiskBand = "LOW"
	BandModerate RiskBand = "MODERATE"
	BandHigh     RiskBand = "HIGH"
	BandVeryHigh RiskBand = "VERY HIGH"
)

// RiskAssessment is the scorer output. Score is the clamped percentage.
type RiskAssessment struct {
	Score      float64  `json:"score"`
	ProbRun    float64  `json:"prob_run"`
	ProbCancel float64  `json:"prob_cancel"`
	Band       RiskBand `json:"risk_band"`
}

// Selection records how the forecast period was chosen.
type Selection string

const (
	SelectionAuto   Selection = "auto"
	SelectionManual Selection = "manual"
)

// Request describes a departure to assess.
type Request struct {
	Date          time.Time
	DepartMinutes int    // minutes after local midnight
	PeriodLabel   string // optional manual override of the period selector
}

// TimeOfDay returns the departure as fractional hours, e.g. 06:10 -> 6.1667.
func (r Request) TimeOfDay() float64 {
	return float64(r.DepartMinutes) / 60.0
}

// DepartLocalTime formats the departure as HH:MM.
func (r Request) DepartLocalTime() string {
	return fmt.Sprintf("%02d:%02d", r.DepartMinutes/60, r.DepartMinutes%60)
}

// Assessment is the record returned to callers and published downstream.
type Assessment struct {
	Date            string    `json:"date"`
	DepartLocalTime string    `json:"depart_local_time"`
	Zone            string    `json:"zone"`
	Label           string    `json:"forecast_label_used"`
	Body            string    `json:"forecast_body_used"`
	Selection       Selection `json:"selection"`

	SeasFt    float64  `json:"seas_ft"`
	WindKt    float64  `json:"wspd_kt"`
	GustKt    float64  `json:"gust_kt"`
	PeriodS   float64  `json:"dpd_s"`
	Defaulted []string `json:"defaulted_fields,omitempty"`

	ProbRun    float64  `json:"prob_run"`
	ProbCancel float64  `json:"prob_cancel"`
	RiskBand   RiskBand `json:"risk_band"`

	AssessedAt time.Time `json:"assessed_at"`
}
