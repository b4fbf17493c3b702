package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/ferry-risk-service/internal/domain"
)

type assessOptions struct {
	date   string
	time   string
	period string
	body   string
	asJSON bool
}

// bodyLabel names a period supplied with --body when --period is empty.
const bodyLabel = "CUSTOM"

func newAssessCommand(root *rootOptions) *cobra.Command {
	opts := &assessOptions{}

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score the run/cancel risk for a departure",
		Example: `  ferrycheck assess
  ferrycheck assess --date 2026-10-19 --time 16:30
  ferrycheck assess --period "MON NIGHT" --json
  ferrycheck assess --body "SW winds 20 kt. Seas 4 ft." --period TONIGHT --time 18:30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession(cmd, root)
			if err != nil {
				return err
			}

			req, err := opts.request(sess.cfg.Location)
			if err != nil {
				return err
			}

			var a domain.Assessment
			if opts.body != "" {
				label := req.PeriodLabel
				if label == "" {
					label = bodyLabel
				}
				a, err = sess.assessor.AssessBody(label, opts.body, req.Date, req.DepartMinutes)
			} else {
				a, err = sess.assessor.Assess(cmd.Context(), req)
			}
			if err != nil {
				return err
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), a)
			}
			renderAssessment(cmd.OutOrStdout(), a)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "departure date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&opts.time, "time", "06:10", "local departure time HH:MM")
	cmd.Flags().StringVar(&opts.period, "period", "", "use this forecast period label instead of the automatic choice")
	cmd.Flags().StringVar(&opts.body, "body", "", "score this period text directly instead of fetching the bulletin")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the assessment as JSON")
	return cmd
}

// request turns the flag values into a domain request. An empty date means
// today in loc.
func (o *assessOptions) request(loc *time.Location) (domain.Request, error) {
	date := domain.Today(loc)
	if o.date != "" {
		d, err := domain.ParseDepartDate(o.date, loc)
		if err != nil {
			return domain.Request{}, err
		}
		date = d
	}

	minutes, err := domain.ParseDepartTime(o.time)
	if err != nil {
		return domain.Request{}, err
	}

	return domain.Request{Date: date, DepartMinutes: minutes, PeriodLabel: o.period}, nil
}
