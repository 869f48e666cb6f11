// Package metrics provides Prometheus metrics for the pipeline and the
// artifact API.
//
// The pipeline is a batch job with no listener, so its gauges are exported
// through the node_exporter textfile format. The API exposes its own
// registry over /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tennis"

// --------------------------------------------------------------------------
// Pipeline
// --------------------------------------------------------------------------

// Pipeline holds the gauges describing the last pipeline run. A nil
// *Pipeline is valid and records nothing.
type Pipeline struct {
	YearsFetched  prometheus.Gauge
	YearsSkipped  prometheus.Gauge
	Matches       prometheus.Gauge
	Players       *prometheus.GaugeVec
	Artifacts     prometheus.Gauge
	Duration      prometheus.Gauge
	LastSuccess   prometheus.Gauge
	FetchDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewPipeline creates and registers the pipeline gauges.
func NewPipeline() *Pipeline {
	m := &Pipeline{registry: prometheus.NewRegistry()}

	m.YearsFetched = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "etl",
		Name:      "years_fetched",
		Help:      "Match years fetched successfully in the last run",
	})
	m.YearsSkipped = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "etl",
		Name:      "years_skipped",
		Help:      "Match years that failed to fetch or parse in the last run",
	})
	m.Matches = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "etl",
		Name:      "matches",
		Help:      "Matches collected in the last run",
	})
	m.Players = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "etl",
		Name:      "players",
		Help:      "Players by set in the last run",
	}, []string{"set"}) // "roster", "active"
	m.Artifacts = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "etl",
		Name:      "artifacts_written",
		Help:      "Artifacts written in the last run",
	})
	m.Duration = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "etl",
		Name:      "run_duration_seconds",
		Help:      "Wall time of the last run",
	})
	m.LastSuccess = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "etl",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last successful run",
	})
	m.FetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "etl",
		Name:      "fetch_duration_seconds",
		Help:      "Time to fetch and normalize one source unit",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"status"}) // "success", "error"

	m.registry.MustRegister(
		m.YearsFetched,
		m.YearsSkipped,
		m.Matches,
		m.Players,
		m.Artifacts,
		m.Duration,
		m.LastSuccess,
		m.FetchDuration,
	)
	return m
}

// RecordFetch observes one unit fetch.
func (m *Pipeline) RecordFetch(d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.FetchDuration.WithLabelValues(status).Observe(d.Seconds())
}

// RunStats is the subset of a run result the gauges report.
type RunStats struct {
	YearsFetched  int
	YearsSkipped  int
	Matches       int
	RosterPlayers int
	ActivePlayers int
	Artifacts     int
	Duration      time.Duration
	FinishedAt    time.Time
}

// RecordRun sets every gauge from a successful run.
func (m *Pipeline) RecordRun(s RunStats) {
	if m == nil {
		return
	}
	m.YearsFetched.Set(float64(s.YearsFetched))
	m.YearsSkipped.Set(float64(s.YearsSkipped))
	m.Matches.Set(float64(s.Matches))
	m.Players.WithLabelValues("roster").Set(float64(s.RosterPlayers))
	m.Players.WithLabelValues("active").Set(float64(s.ActivePlayers))
	m.Artifacts.Set(float64(s.Artifacts))
	m.Duration.Set(s.Duration.Seconds())
	m.LastSuccess.Set(float64(s.FinishedAt.Unix()))
}

// Gatherer exposes the registry, mainly for tests.
func (m *Pipeline) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the registry to path in the text exposition format.
// The file is replaced atomically.
func (m *Pipeline) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}

// --------------------------------------------------------------------------
// API
// --------------------------------------------------------------------------

// API holds the artifact server's request metrics. A nil *API is valid and
// records nothing.
type API struct {
	Requests *prometheus.CounterVec
	Bytes    *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewAPI creates the API registry, including Go runtime and process
// collectors.
func NewAPI() *API {
	m := &API{registry: prometheus.NewRegistry()}

	m.Requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "artifact_requests_total",
		Help:      "Artifact requests by artifact kind and outcome",
	}, []string{"artifact", "result"}) // result: "hit", "miss", "not_modified", "not_found", "bad_request", "error"
	m.Bytes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "artifact_bytes_total",
		Help:      "Uncompressed artifact bytes served",
	}, []string{"artifact"})

	m.registry.MustRegister(m.Requests, m.Bytes)
	m.registry.MustRegister(prometheus.NewGoCollector())
	m.registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	return m
}

// RecordRequest counts one artifact request.
func (m *API) RecordRequest(artifact, result string, size int) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(artifact, result).Inc()
	if size > 0 {
		m.Bytes.WithLabelValues(artifact).Add(float64(size))
	}
}

// Handler returns an HTTP handler for the registry.
func (m *API) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
