package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultModelConfig_Valid(t *testing.T) {
	require.NoError(t, DefaultModelConfig().Validate())
}

func TestModelConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ModelConfig)
		errText string
	}{
		{"reversed clamp", func(c *ModelConfig) { c.MinScore, c.MaxScore = 50, 40 }, "min score"},
		{"clamp out of range", func(c *ModelConfig) { c.MaxScore = 120 }, "0–100"},
		{"bands not descending", func(c *ModelConfig) { c.Bands.Moderate = 0.95 }, "descending"},
		{"zero default period", func(c *ModelConfig) { c.Defaults.PeriodS = 0 }, "dominant period"},
		{"negative default seas", func(c *ModelConfig) { c.Defaults.SeasFt = -1 }, "must not be negative"},
		{"reversed window", func(c *ModelConfig) { c.TODWindows = []HourWindow{{From: 8, To: 5}} }, "reversed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultModelConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestHourWindow_Contains(t *testing.T) {
	w := HourWindow{From: 5, To: 8}
	assert.True(t, w.Contains(5))
	assert.True(t, w.Contains(8))
	assert.True(t, w.Contains(6.5))
	assert.False(t, w.Contains(4.999))
	assert.False(t, w.Contains(8.001))
}
