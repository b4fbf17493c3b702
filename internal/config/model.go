package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/ferry-risk-service/internal/domain"
)

// modelOverride binds a MODEL_* environment variable to a scalar of the
// scoring model.
type modelOverride struct {
	env   string
	field *float64
}

func modelOverrides(m *domain.ModelConfig) []modelOverride {
	return []modelOverride{
		{"MODEL_BASE_SCORE", &m.BaseScore},
		{"MODEL_SEAS_THRESHOLD_1", &m.SeasThreshold1},
		{"MODEL_SEAS_PENALTY_1", &m.SeasPenalty1},
		{"MODEL_SEAS_THRESHOLD_2", &m.SeasThreshold2},
		{"MODEL_SEAS_PENALTY_2", &m.SeasPenalty2},
		{"MODEL_WIND_THRESHOLD", &m.WindThreshold},
		{"MODEL_WIND_PENALTY", &m.WindPenalty},
		{"MODEL_GUST_THRESHOLD", &m.GustThreshold},
		{"MODEL_GUST_PENALTY", &m.GustPenalty},
		{"MODEL_PERIOD_THRESHOLD_1", &m.PeriodThreshold1},
		{"MODEL_PERIOD_PENALTY_1", &m.PeriodPenalty1},
		{"MODEL_PERIOD_THRESHOLD_2", &m.PeriodThreshold2},
		{"MODEL_PERIOD_PENALTY_2", &m.PeriodPenalty2},
		{"MODEL_TOD_PENALTY", &m.TODPenalty},
		{"MODEL_MIN_SCORE", &m.MinScore},
		{"MODEL_MAX_SCORE", &m.MaxScore},
		{"MODEL_DEFAULT_WSPD", &m.Defaults.WindKt},
		{"MODEL_DEFAULT_GUST_OFFSET", &m.Defaults.GustOffsetKt},
		{"MODEL_DEFAULT_SEAS", &m.Defaults.SeasFt},
		{"MODEL_DEFAULT_DPD", &m.Defaults.PeriodS},
		{"MODEL_BAND_LOW", &m.Bands.Low},
		{"MODEL_BAND_MODERATE", &m.Bands.Moderate},
		{"MODEL_BAND_HIGH", &m.Bands.High},
	}
}

// loadModel starts from domain.DefaultModelConfig and applies any MODEL_*
// overrides present in the environment.
func loadModel() (domain.ModelConfig, error) {
	m := domain.DefaultModelConfig()

	for _, o := range modelOverrides(&m) {
		s := os.Getenv(o.env)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return domain.ModelConfig{}, fmt.Errorf("invalid %s: %w", o.env, err)
		}
		*o.field = v
	}

	if s := os.Getenv("MODEL_TOD_WINDOWS"); s != "" {
		windows, err := parseHourWindows(s)
		if err != nil {
			return domain.ModelConfig{}, fmt.Errorf("invalid MODEL_TOD_WINDOWS: %w", err)
		}
		m.TODWindows = windows
	}

	if err := m.Validate(); err != nil {
		return domain.ModelConfig{}, fmt.Errorf("invalid model configuration: %w", err)
	}
	return m, nil
}

// parseHourWindows parses "5-8,18-22" into hour windows. "none" clears them.
func parseHourWindows(s string) ([]domain.HourWindow, error) {
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	windows := make([]domain.HourWindow, 0, len(parts))
	for _, part := range parts {
		from, to, ok := strings.Cut(strings.TrimSpace(part), "-")
		if !ok {
			return nil, fmt.Errorf("window %q: want FROM-TO", part)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(from), 64)
		if err != nil {
			return nil, fmt.Errorf("window %q: %w", part, err)
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(to), 64)
		if err != nil {
			return nil, fmt.Errorf("window %q: %w", part, err)
		}
		windows = append(windows, domain.HourWindow{From: f, To: t})
	}
	return windows, nil
}
