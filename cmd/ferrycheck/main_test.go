package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/ferry-risk-service/internal/domain"
)

const fixture = "../../internal/domain/testdata/fzus51_kbox.html"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPeriodsCommand(t *testing.T) {
	out, _, err := execute(t, "periods", "--file", fixture)
	require.NoError(t, err)

	assert.Contains(t, out, "Nantucket Sound: 5 forecast periods")
	for _, label := range []string{"TODAY", "TONIGHT", "MON", "MON NIGHT", "TUE"} {
		assert.Contains(t, out, label)
	}
	assert.NotContains(t, out, "Vineyard")
}

func TestPeriodsCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "periods", "--file", fixture, "--json")
	require.NoError(t, err)

	var body struct {
		Zone    string                  `json:"zone"`
		Periods []domain.ForecastPeriod `json:"periods"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "Nantucket Sound", body.Zone)
	require.Len(t, body.Periods, 5)
	assert.Equal(t, "MON", body.Periods[2].Label)
}

func TestAssessCommand_Text(t *testing.T) {
	out, _, err := execute(t, "assess", "--file", fixture, "--date", "2026-10-19", "--time", "06:10")
	require.NoError(t, err)

	assert.Contains(t, out, "2026-10-19 06:10")
	assert.Contains(t, out, "Forecast period used: MON (auto)")
	assert.Contains(t, out, "0.51")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "high-risk zone")
}

func TestAssessCommand_JSONManualPeriod(t *testing.T) {
	out, _, err := execute(t, "assess", "-f", fixture, "--date", "2026-10-19", "--time", "12:00", "--period", "tue", "--json")
	require.NoError(t, err)

	var a domain.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, "TUE", a.Label)
	assert.Equal(t, domain.SelectionManual, a.Selection)
	assert.Equal(t, domain.BandLow, a.RiskBand)
	assert.InDelta(t, 0.90, a.ProbRun, 1e-9)
}

func TestAssessCommand_Body(t *testing.T) {
	body := "E winds 10 kt. Seas 2 ft. Wave Detail: E 2 ft at 8 seconds."

	t.Run("default label", func(t *testing.T) {
		// No --file: the bulletin source must never be contacted.
		out, _, err := execute(t, "assess", "--body", body, "--date", "2026-10-18", "--time", "12:00", "--json")
		require.NoError(t, err)

		var a domain.Assessment
		require.NoError(t, json.Unmarshal([]byte(out), &a))
		assert.Equal(t, bodyLabel, a.Label)
		assert.Equal(t, domain.SelectionManual, a.Selection)
		assert.Equal(t, domain.BandLow, a.RiskBand)
		assert.InDelta(t, 0.90, a.ProbRun, 1e-9)
	})

	t.Run("period names the body", func(t *testing.T) {
		out, _, err := execute(t, "assess", "--body", body, "--period", "TONIGHT", "--date", "2026-10-18", "--time", "12:00")
		require.NoError(t, err)
		assert.Contains(t, out, "Forecast period used: TONIGHT (manual)")
	})

	t.Run("bad time", func(t *testing.T) {
		_, _, err := execute(t, "assess", "--body", body, "--time", "25:00")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "departure time")
	})
}

func TestAssessCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		errText string
	}{
		{"bad date", []string{"assess", "-f", fixture, "--date", "tomorrow"}, "departure date"},
		{"bad time", []string{"assess", "-f", fixture, "--time", "6pm"}, "departure time"},
		{"unknown period", []string{"assess", "-f", fixture, "--date", "2026-10-19", "--period", "WED"}, "unknown forecast period"},
		{"missing file", []string{"assess", "-f", "does-not-exist.html"}, "forecast document unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestAdvisory(t *testing.T) {
	assert.Contains(t, advisory(domain.BandVeryHigh), "high-risk")
	assert.Contains(t, advisory(domain.BandHigh), "high-risk")
	assert.Contains(t, advisory(domain.BandModerate), "either way")
	assert.Contains(t, advisory(domain.BandLow), "favorable")
}
