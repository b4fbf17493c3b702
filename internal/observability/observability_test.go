package observability

import (
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/ferry-risk-service/internal/config"
)

func TestNewMetricsWithRegistry_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(reg)

	m.ForecastFetches.WithLabelValues("success").Inc()
	m.Assessments.WithLabelValues("HIGH", "auto").Inc()
	m.LastProbRun.Set(0.51)

	families, err := reg.Gather()
	require.NoError(t, err)

	gauges := make(map[string]float64, len(families))
	for _, f := range families {
		gauges[f.GetName()] = f.GetMetric()[0].GetGauge().GetValue()
	}
	assert.Contains(t, gauges, "ferry_risk_forecast_fetch_total")
	assert.Contains(t, gauges, "ferry_risk_assessments_total")
	assert.InDelta(t, 0.51, gauges["ferry_risk_last_prob_run"], 1e-9)
}

func TestNewMetricsForTesting_Independent(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetricsForTesting()
		NewMetricsForTesting()
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(&config.Config{LogLevel: "debug", LogFormat: "text"})
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))

	logger = NewLogger(&config.Config{LogLevel: "error", LogFormat: "json"})
	assert.False(t, logger.Enabled(t.Context(), slog.LevelWarn))
}
