package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ferry_risk"

// Metrics holds the Prometheus counters, histograms, and gauges for the risk pipeline.
type Metrics struct {
	// Forecast retrieval.
	ForecastFetches       *prometheus.CounterVec // labels: outcome={success,error}
	ForecastFetchDuration prometheus.Histogram
	ForecastCache         *prometheus.CounterVec // labels: result={hit,miss}

	// Assessment outcomes.
	Assessments    *prometheus.CounterVec // labels: band, selection={auto,manual}
	PipelineErrors *prometheus.CounterVec // labels: kind={document,region,periods,period,request}
	LastProbRun    prometheus.Gauge

	PublishErrors prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates the metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetricsWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ForecastFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forecast_fetch_total",
			Help:      "Forecast document fetches by outcome.",
		}, []string{"outcome"}),
		ForecastFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "forecast_fetch_duration_seconds",
			Help:      "Forecast document HTTP request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ForecastCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forecast_cache_total",
			Help:      "Forecast document cache lookups by result.",
		}, []string{"result"}),
		Assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_total",
			Help:      "Completed risk assessments by band and period selection mode.",
		}, []string{"band", "selection"}),
		PipelineErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_errors_total",
			Help:      "Assessment failures by error kind.",
		}, []string{"kind"}),
		LastProbRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_prob_run",
			Help:      "Probability of running from the most recent assessment.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      "Assessments that could not be written to the sink topic.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.ForecastFetches,
			m.ForecastFetchDuration,
			m.ForecastCache,
			m.Assessments,
			m.PipelineErrors,
			m.LastProbRun,
			m.PublishErrors,
		)
	}

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return NewMetricsWithRegistry(prometheus.NewRegistry())
}
