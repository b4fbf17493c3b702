package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/ferry-risk-service/internal/domain"
)

func newPeriodsCommand(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "periods",
		Short: "List the forecast periods parsed for the configured zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession(cmd, root)
			if err != nil {
				return err
			}

			periods, err := sess.assessor.Periods(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"zone": sess.assessor.Zone(), "periods": periods})
			}
			renderPeriods(cmd.OutOrStdout(), sess.assessor.Zone(), periods)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func renderPeriods(w io.Writer, zone string, periods []domain.ForecastPeriod) {
	fmt.Fprintf(w, "%s: %d forecast periods\n", zone, len(periods))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Label", "Forecast"})
	for i, p := range periods {
		t.AppendRow(table.Row{i + 1, p.Label, p.Body})
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 3, WidthMax: 72}})
	t.Render()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
