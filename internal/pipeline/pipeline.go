package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/ferry-risk-service/internal/domain"
	"github.com/couchcryptid/ferry-risk-service/internal/observability"
)

// Publisher delivers completed assessments downstream.
type Publisher interface {
	Publish(ctx context.Context, a domain.Assessment) error
}

// Source identifies the forecast product and the zone block to read from it.
type Source struct {
	URL      string
	Zone     string
	Boundary *regexp.Regexp
}

// Assessor orchestrates fetch, parse, period selection and scoring for a
// single forecast zone.
type Assessor struct {
	fetcher   domain.DocumentFetcher
	source    Source
	model     domain.ModelConfig
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// New creates an Assessor. Pass a nil publisher to disable publishing.
func New(fetcher domain.DocumentFetcher, source Source, model domain.ModelConfig, publisher Publisher, logger *slog.Logger, metrics *observability.Metrics) *Assessor {
	return &Assessor{
		fetcher:   fetcher,
		source:    source,
		model:     model,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// Zone returns the forecast zone this Assessor reads.
func (a *Assessor) Zone() string {
	return a.source.Zone
}

// CheckReadiness returns nil once a forecast has been fetched and parsed,
// or an error describing why the service is not yet ready.
func (a *Assessor) CheckReadiness(_ context.Context) error {
	if !a.ready.Load() {
		return errors.New("no forecast has been parsed yet")
	}
	return nil
}

// Periods fetches the bulletin and returns the parsed periods of the zone.
func (a *Assessor) Periods(ctx context.Context) ([]domain.ForecastPeriod, error) {
	start := time.Now()

	raw, err := a.fetcher.Fetch(ctx, a.source.URL)
	if err != nil {
		return nil, a.fail(fmt.Errorf("%w: %w", domain.ErrDocumentUnavailable, err))
	}

	periods, err := domain.ParseBulletin(raw, a.source.Zone, a.source.Boundary)
	if err != nil {
		return nil, a.fail(err)
	}

	a.ready.Store(true)
	a.logger.Debug("forecast parsed",
		"zone", a.source.Zone,
		"periods", len(periods),
		"duration", time.Since(start),
	)
	return periods, nil
}

// Assess scores one departure against the current forecast. The period is
// chosen automatically unless req names one.
func (a *Assessor) Assess(ctx context.Context, req domain.Request) (domain.Assessment, error) {
	if err := domain.ValidateRequest(req); err != nil {
		return domain.Assessment{}, a.fail(err)
	}

	periods, err := a.Periods(ctx)
	if err != nil {
		return domain.Assessment{}, err
	}

	period, sel, err := domain.ChoosePeriod(periods, req)
	if err != nil {
		return domain.Assessment{}, a.fail(err)
	}

	result := domain.AssessPeriod(a.source.Zone, period, sel, req, a.model)
	a.record(result)
	a.publish(ctx, result)
	return result, nil
}

// RiskForDate is the programmatic entry point: automatic period selection
// for a departure date and minutes after local midnight.
func (a *Assessor) RiskForDate(ctx context.Context, date time.Time, departMinutes int) (domain.Assessment, error) {
	return a.Assess(ctx, domain.Request{Date: date, DepartMinutes: departMinutes})
}

// AssessBody scores a period body the caller already holds, skipping the
// fetch. The result is marked as a manual selection.
func (a *Assessor) AssessBody(label, body string, date time.Time, departMinutes int) (domain.Assessment, error) {
	req := domain.Request{Date: date, DepartMinutes: departMinutes, PeriodLabel: label}
	if err := domain.ValidateRequest(req); err != nil {
		return domain.Assessment{}, a.fail(err)
	}

	result := domain.AssessPeriod(a.source.Zone, domain.ForecastPeriod{Label: label, Body: body}, domain.SelectionManual, req, a.model)
	a.record(result)
	return result, nil
}

func (a *Assessor) record(result domain.Assessment) {
	a.metrics.Assessments.WithLabelValues(string(result.RiskBand), string(result.Selection)).Inc()
	a.metrics.LastProbRun.Set(result.ProbRun)
	a.logger.Info("assessment complete",
		"date", result.Date,
		"depart", result.DepartLocalTime,
		"period", result.Label,
		"selection", result.Selection,
		"prob_run", result.ProbRun,
		"risk_band", result.RiskBand,
		"defaulted", result.Defaulted,
	)
}

// publish never fails the assessment; errors are logged and counted.
func (a *Assessor) publish(ctx context.Context, result domain.Assessment) {
	if a.publisher == nil {
		return
	}
	if err := a.publisher.Publish(ctx, result); err != nil {
		a.metrics.PublishErrors.Inc()
		a.logger.Warn("publish assessment failed", "error", err, "date", result.Date, "depart", result.DepartLocalTime)
	}
}

func (a *Assessor) fail(err error) error {
	a.metrics.PipelineErrors.WithLabelValues(errorKind(err)).Inc()
	return err
}

// errorKind maps an error to the pipeline_errors_total label.
func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrDocumentUnavailable):
		return "document"
	case errors.Is(err, domain.ErrRegionNotFound):
		return "region"
	case errors.Is(err, domain.ErrNoPeriodsParsed):
		return "periods"
	case errors.Is(err, domain.ErrUnknownPeriod):
		return "period"
	case errors.Is(err, domain.ErrInvalidRequest):
		return "request"
	default:
		return "other"
	}
}
