package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleSet_Precedence(t *testing.T) {
	tests := []struct {
		name      string
		rules     RuleSet
		text      string
		value     float64
		ruleName  string
		wantMatch bool
	}{
		{"wind range beats single", windRules, "NW winds 10 kt, increasing to 25 to 30 kt", 30, "wind_range", true},
		{"wind range takes max", windRules, "winds 35 to 25 kt", 35, "wind_range", true},
		{"wind dash range", windRules, "winds 15-20 kt", 20, "wind_range", true},
		{"wind single", windRules, "E winds 10 kt.", 10, "wind_single", true},
		{"wind case-insensitive", windRules, "WINDS 10 TO 15 KT", 15, "wind_range", true},
		{"wind absent", windRules, "Seas 2 ft.", 0, "", false},
		{"gust up to", gustRules, "with gusts up to 35 kt", 35, "gust", true},
		{"gust bare", gustRules, "gust 28 kt", 28, "gust", true},
		{"seas range midpoint", seasRules, "Seas 5 to 7 ft.", 6, "seas_range", true},
		{"seas odd range midpoint", seasRules, "Seas 2 to 3 ft.", 2.5, "seas_range", true},
		{"seas single", seasRules, "Seas 2 ft.", 2, "seas_single", true},
		{"sea singular", seasRules, "sea 3 ft", 3, "seas_single", true},
		{"seas in feet only", seasRules, "Seas around 4 feet", 0, "", false},
		{"period", periodRules, "Wave Detail: W 6 ft at 6 seconds.", 6, "dominant_period", true},
		{"period absent", periodRules, "W 6 ft", 0, "", false},
		{"zero period rejected", periodRules, "Wave Detail: W 2 ft at 0 seconds.", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, name, ok := tt.rules.Match(tt.text)
			assert.Equal(t, tt.wantMatch, ok)
			assert.Equal(t, tt.ruleName, name)
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestExtractMeasurements(t *testing.T) {
	defaults := DefaultModelConfig().Defaults

	t.Run("nothing recognizable", func(t *testing.T) {
		m := ExtractMeasurements("Patchy fog in the morning. Visibility 1 nm or less.", defaults)
		assert.Equal(t, 4.0, m.SeasFt)
		assert.Equal(t, 20.0, m.WindKt)
		assert.Equal(t, 25.0, m.GustKt)
		assert.Equal(t, 6.0, m.PeriodS)
		assert.Equal(t, []string{"wspd_kt", "gust_kt", "seas_ft", "dpd_s"}, m.Defaulted)
	})

	t.Run("ranges with wave detail", func(t *testing.T) {
		m := ExtractMeasurements("W winds 25 to 35 kt. Seas 5 to 7 ft. Wave Detail: W 6 ft at 6 seconds.", defaults)
		assert.Equal(t, 35.0, m.WindKt)
		assert.Equal(t, 6.0, m.SeasFt)
		assert.Equal(t, 6.0, m.PeriodS)
		assert.Equal(t, 40.0, m.GustKt)
		assert.Equal(t, []string{"gust_kt"}, m.Defaulted)
	})

	t.Run("explicit gust", func(t *testing.T) {
		m := ExtractMeasurements("SW winds 15 to 20 kt with gusts up to 25 kt. Seas 3 to 4 ft.", defaults)
		assert.Equal(t, 20.0, m.WindKt)
		assert.Equal(t, 25.0, m.GustKt)
		assert.Equal(t, 3.5, m.SeasFt)
		assert.Equal(t, []string{"dpd_s"}, m.Defaulted)
	})

	t.Run("zero wave period falls back to default", func(t *testing.T) {
		m := ExtractMeasurements("Wave Detail: W 2 ft at 0 seconds.", defaults)
		assert.Equal(t, defaults.PeriodS, m.PeriodS)
		assert.Contains(t, m.Defaulted, "dpd_s")
	})

	t.Run("gust default follows defaulted wind", func(t *testing.T) {
		m := ExtractMeasurements("Seas 2 ft.", defaults)
		assert.Equal(t, 25.0, m.GustKt)
	})

	t.Run("custom defaults", func(t *testing.T) {
		custom := MeasurementDefaults{WindKt: 12, GustOffsetKt: 8, SeasFt: 3, PeriodS: 9}
		m := ExtractMeasurements("", custom)
		assert.Equal(t, Measurements{
			SeasFt: 3, WindKt: 12, GustKt: 20, PeriodS: 9,
			Defaulted: []string{"wspd_kt", "gust_kt", "seas_ft", "dpd_s"},
		}, m)
	})
}
