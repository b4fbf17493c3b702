package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/couchcryptid/ferry-risk-service/internal/domain"
)

func renderAssessment(w io.Writer, a domain.Assessment) {
	fmt.Fprintf(w, "Ferry risk estimate for %s %s (local)\n", a.Date, a.DepartLocalTime)
	fmt.Fprintf(w, "Forecast period used: %s (%s)\n", a.Label, a.Selection)
	fmt.Fprintf(w, "Forecast text: %s\n\n", a.Body)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendRows([]table.Row{
		{"Seas (ft)", fmt.Sprintf("%.2f", a.SeasFt)},
		{"Sustained wind (kt)", fmt.Sprintf("%.1f", a.WindKt)},
		{"Gust (kt)", fmt.Sprintf("%.1f", a.GustKt)},
		{"Dominant period (s)", fmt.Sprintf("%.1f", a.PeriodS)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"RUN probability", fmt.Sprintf("%.2f", a.ProbRun)},
		{"CANCEL probability", fmt.Sprintf("%.2f", a.ProbCancel)},
		{"Risk band", string(a.RiskBand)},
	})
	t.Render()

	if len(a.Defaulted) > 0 {
		fmt.Fprintf(w, "Not in forecast, defaults used: %s\n", strings.Join(a.Defaulted, ", "))
	}
	fmt.Fprintln(w, advisory(a.RiskBand))
}

func advisory(band domain.RiskBand) string {
	switch band {
	case domain.BandHigh, domain.BandVeryHigh:
		return "Conditions are in the high-risk zone for cancellations."
	case domain.BandModerate:
		return "Moderate risk: conditions could go either way."
	default:
		return "Low risk: conditions look favorable for running."
	}
}
