package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default duration buckets in milliseconds; a full dataset computes in well
// under a second.
var defaultBuckets = []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000} //nolint:gochecknoglobals // constant bucket layout

// Manager owns every metric of a run on a private registry.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         *prometheus.Registry

	recordsLoaded   prometheus.Counter
	weeksProcessed  prometheus.Counter
	weeksSkipped    prometheus.Counter
	degenerate      *prometheus.CounterVec
	computeDuration prometheus.Histogram
	renderDuration  prometheus.Histogram
	seasonIndex     *prometheus.GaugeVec
	lastRunUnix     prometheus.Gauge
}

// NewManager creates a metrics manager. Without WithPrometheusRegistry it
// registers on a fresh registry so Go runtime collectors stay out of the output.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "bias",
		subsystem:        "index",
		histogramBuckets: defaultBuckets,
		constLabels:      map[string]string{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.constLabels)

	m.recordsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_loaded_total",
		Help:        "Contestant-week records read from the input",
		ConstLabels: labels,
	})

	m.weeksProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "weeks_processed_total",
		Help:        "Competition weeks that produced a bias index",
		ConstLabels: labels,
	})

	m.weeksSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "weeks_skipped_total",
		Help:        "Competition weeks skipped for having fewer than two contestants",
		ConstLabels: labels,
	})

	m.degenerate = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "degenerate_total",
		Help:        "Weekly indices resolved by the zero judge distance rule",
		ConstLabels: labels,
	}, []string{"rule", "kind"})

	m.computeDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "compute_duration_milliseconds",
		Help:        "Time spent computing weekly indices and season means",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.renderDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "render_duration_milliseconds",
		Help:        "Time spent rendering the chart",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.seasonIndex = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "season_mean",
		Help:        "Mean weekly bias index of a season by rule",
		ConstLabels: labels,
	}, []string{"season", "rule"})

	m.lastRunUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "last_run_timestamp_seconds",
		Help:        "Unix time of the last completed run",
		ConstLabels: labels,
	})
}

// Registry exposes the registry, for tests and custom exporters.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// RecordRecordsLoaded adds n loaded records.
func (m *Manager) RecordRecordsLoaded(n int) { m.recordsLoaded.Add(float64(n)) }

// RecordWeekProcessed counts a week that produced an index.
func (m *Manager) RecordWeekProcessed() { m.weeksProcessed.Inc() }

// RecordWeekSkipped counts a week that was too small to rank.
func (m *Manager) RecordWeekSkipped() { m.weeksSkipped.Inc() }

// RecordDegenerate counts an index resolved by a fixed value.
func (m *Manager) RecordDegenerate(rule, kind string) {
	m.degenerate.WithLabelValues(rule, kind).Inc()
}

// ObserveComputeDuration records how long the computation took.
func (m *Manager) ObserveComputeDuration(d time.Duration) {
	m.computeDuration.Observe(float64(d) / float64(time.Millisecond))
}

// ObserveRenderDuration records how long rendering took.
func (m *Manager) ObserveRenderDuration(d time.Duration) {
	m.renderDuration.Observe(float64(d) / float64(time.Millisecond))
}

// SetSeasonIndex publishes a season mean.
func (m *Manager) SetSeasonIndex(season int, rule string, value float64) {
	m.seasonIndex.WithLabelValues(strconv.Itoa(season), rule).Set(value)
}

// MarkRunCompleted stamps the completion time.
func (m *Manager) MarkRunCompleted(t time.Time) {
	m.lastRunUnix.Set(float64(t.Unix()))
}

// WriteTextfile writes every metric in the Prometheus text format, suitable
// for node_exporter's textfile collector. Parent directories are created.
func (m *Manager) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteTextfile, err)
		}
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteTextfile, err)
	}
	return nil
}
